package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/localize/pkg/resolver"
)

// message is one table read from a file, in document order.
type message struct {
	key   string
	pairs []resolver.Pair[string]
}

// WithYAMLDir loads tables from YAML files in an fs.FS.
// File convention: {namespace}.yaml or {namespace}.yml, where nested
// directories become dot-separated namespaces. Each document maps a message
// key to a mapping of language to text:
//
//	# greetings.yaml
//	hello:
//	  en: Hello
//	  en-GB: Hello, mate
//	  fr: Bonjour
//
// registers the table "greetings.hello". Languages keep their file order.
func WithYAMLDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, []string{".yaml", ".yml"}, decodeYAML)
	}
}

// WithJSONDir loads tables from {namespace}.json files in an fs.FS.
// The document layout is the same as for WithYAMLDir.
func WithJSONDir(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return loadDir(c, fsys, []string{".json"}, decodeJSON)
	}
}

func loadDir(c *Catalog, fsys fs.FS, exts []string, decode func([]byte) ([]message, error)) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(filePath))
		if !slices.Contains(exts, ext) {
			return nil
		}

		namespace := strings.ReplaceAll(strings.TrimSuffix(filePath, path.Ext(filePath)), "/", ".")
		if namespace == "" || strings.HasSuffix(namespace, ".") {
			return fmt.Errorf("%w: %q", ErrEmptyNamespace, filePath)
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		messages, err := decode(data)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrInvalidFile, filePath, err)
		}

		for _, m := range messages {
			table, err := resolver.NewTable(m.pairs...)
			if err != nil {
				return fmt.Errorf("%w: %q key %q: %w", ErrInvalidFile, filePath, m.key, err)
			}
			if err := c.add(namespace+"."+m.key, table); err != nil {
				return err
			}
		}

		return nil
	})
}

// decodeYAML walks the node tree instead of unmarshaling into maps so that
// language order survives.
func decodeYAML(data []byte) ([]message, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: document must be a mapping", root.Line)
	}

	messages := make([]message, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		if strings.TrimSpace(keyNode.Value) == "" {
			return nil, fmt.Errorf("line %d: message key cannot be empty", keyNode.Line)
		}
		if valNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: %q must map languages to text", valNode.Line, keyNode.Value)
		}

		m := message{key: keyNode.Value}
		for j := 0; j+1 < len(valNode.Content); j += 2 {
			langNode, textNode := valNode.Content[j], valNode.Content[j+1]
			if textNode.Kind != yaml.ScalarNode || textNode.Tag == "!!null" {
				return nil, fmt.Errorf("line %d: %q.%q must be text", textNode.Line, keyNode.Value, langNode.Value)
			}
			m.pairs = append(m.pairs, resolver.Pair[string]{Key: langNode.Value, Value: textNode.Value})
		}
		messages = append(messages, m)
	}

	return messages, nil
}

// decodeJSON reads the token stream for the same reason decodeYAML walks nodes.
func decodeJSON(data []byte) ([]message, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var messages []message
	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(key) == "" {
			return nil, errors.New("message key cannot be empty")
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("%q must map languages to text: %w", key, err)
		}

		m := message{key: key}
		for dec.More() {
			lang, err := stringToken(dec)
			if err != nil {
				return nil, err
			}
			text, err := stringToken(dec)
			if err != nil {
				return nil, fmt.Errorf("%q.%q must be text: %w", key, lang, err)
			}
			m.pairs = append(m.pairs, resolver.Pair[string]{Key: lang, Value: text})
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after document")
	}

	return messages, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %v", tok)
	}
	return s, nil
}
