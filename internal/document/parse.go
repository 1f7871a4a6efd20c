package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the parser for a raw document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// DetectFormat picks a format from the file extension. Everything that is
// not recognizably YAML parses as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Load parses raw document bytes. The path only informs format detection
// and error messages; it may be empty for stdin input, in which case JSON
// is tried first with a YAML fallback.
func Load(data []byte, path string) (*Value, error) {
	if path != "" {
		switch DetectFormat(path) {
		case FormatYAML:
			return ParseYAML(data)
		default:
			return ParseJSON(bytes.NewReader(data))
		}
	}

	v, jsonErr := ParseJSON(bytes.NewReader(data))
	if jsonErr == nil {
		return v, nil
	}
	if v, err := ParseYAML(data); err == nil {
		return v, nil
	}
	return nil, jsonErr
}

// ParseJSON decodes a single JSON document through the token stream so that
// object key order survives (a plain Unmarshal into map[string]any would
// lose it). Numbers keep their lexical form.
func ParseJSON(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := parseJSONValue(dec)
	if err != nil {
		return nil, err
	}

	// A document is exactly one value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected content after document")
	}
	return v, nil
}

func parseJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of document")
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			seq := NewSequence()
			for dec.More() {
				item, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				seq.Items = append(seq.Items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return seq, nil
		case '{':
			m := NewMapping()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return nil, err
				}
				m.Pairs = append(m.Pairs, Pair{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return m, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t.String()), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// ParseYAML decodes a single YAML document via the node API, which keeps
// mapping keys in source order.
func ParseYAML(data []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return NewNull(), nil
	}
	return yamlNodeToValue(root.Content[0])
}

func yamlNodeToValue(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("unresolved alias at line %d", n.Line)
		}
		return yamlNodeToValue(n.Alias)

	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return NewNull(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, fmt.Errorf("decoding bool at line %d: %w", n.Line, err)
			}
			return NewBool(b), nil
		case "!!int", "!!float":
			return NewNumber(n.Value), nil
		default:
			return NewString(n.Value), nil
		}

	case yaml.SequenceNode:
		seq := NewSequence()
		for _, c := range n.Content {
			item, err := yamlNodeToValue(c)
			if err != nil {
				return nil, err
			}
			seq.Items = append(seq.Items, item)
		}
		return seq, nil

	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			val, err := yamlNodeToValue(valNode)
			if err != nil {
				return nil, err
			}
			m.Pairs = append(m.Pairs, Pair{Key: keyNode.Value, Value: val})
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", n.Kind, n.Line)
	}
}
