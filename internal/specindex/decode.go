package specindex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses a document into a Node tree. YAML is used for .yaml/.yml files, JSON otherwise.
// An empty input yields a null scalar.
func Decode(filename string, content []byte) (*Node, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return decodeYAML(content)
	default:
		return decodeJSON(content)
	}
}

func decodeJSON(content []byte) (*Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()

	first, err := decoder.Token()
	if errors.Is(err, io.EOF) {
		return &Node{Kind: Scalar, Null: true}, nil
	}
	if err != nil {
		return nil, err
	}
	root, err := buildJSONNode(decoder, first)
	if err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return root, nil
}

func decodeJSONValue(decoder *json.Decoder) (*Node, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	return buildJSONNode(decoder, token)
}

func buildJSONNode(decoder *json.Decoder, token json.Token) (*Node, error) {
	switch value := token.(type) {
	case json.Delim:
		switch value {
		case '{':
			node := &Node{Kind: Object}
			for decoder.More() {
				keyToken, err := decoder.Token()
				if err != nil {
					return nil, err
				}
				key, isString := keyToken.(string)
				if !isString {
					return nil, fmt.Errorf("object key is not a string: %v", keyToken)
				}
				entryValue, err := decodeJSONValue(decoder)
				if err != nil {
					return nil, err
				}
				node.Entries = append(node.Entries, Entry{Key: key, Value: entryValue})
			}
			if _, err := decoder.Token(); err != nil { //closing brace
				return nil, err
			}
			return node, nil
		case '[':
			node := &Node{Kind: Array}
			for decoder.More() {
				element, err := decodeJSONValue(decoder)
				if err != nil {
					return nil, err
				}
				node.Elements = append(node.Elements, element)
			}
			if _, err := decoder.Token(); err != nil { //closing bracket
				return nil, err
			}
			return node, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %q", rune(value))
	case string:
		return &Node{Kind: Scalar, Value: value}, nil
	case json.Number:
		return &Node{Kind: Scalar, Value: value.String()}, nil
	case bool:
		return &Node{Kind: Scalar, Value: strconv.FormatBool(value)}, nil
	case nil:
		return &Node{Kind: Scalar, Null: true}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", token)
}

func decodeYAML(content []byte) (*Node, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, err
	}
	if document.Kind == 0 || len(document.Content) == 0 { //empty input
		return &Node{Kind: Scalar, Null: true}, nil
	}
	return convertYAML(document.Content[0], make(map[*yaml.Node]bool))
}

// convertYAML resolves aliases, inProgress guards against self-referencing anchors.
func convertYAML(source *yaml.Node, inProgress map[*yaml.Node]bool) (*Node, error) {
	if inProgress[source] {
		return nil, fmt.Errorf("recursive alias at line %d", source.Line)
	}
	inProgress[source] = true
	defer delete(inProgress, source)

	switch source.Kind {
	case yaml.DocumentNode:
		if len(source.Content) == 0 {
			return &Node{Kind: Scalar, Null: true}, nil
		}
		return convertYAML(source.Content[0], inProgress)
	case yaml.AliasNode:
		return convertYAML(source.Alias, inProgress)
	case yaml.MappingNode:
		node := &Node{Kind: Object}
		for i := 0; i+1 < len(source.Content); i += 2 {
			value, err := convertYAML(source.Content[i+1], inProgress)
			if err != nil {
				return nil, err
			}
			node.Entries = append(node.Entries, Entry{Key: source.Content[i].Value, Value: value})
		}
		return node, nil
	case yaml.SequenceNode:
		node := &Node{Kind: Array}
		for _, item := range source.Content {
			element, err := convertYAML(item, inProgress)
			if err != nil {
				return nil, err
			}
			node.Elements = append(node.Elements, element)
		}
		return node, nil
	case yaml.ScalarNode:
		return &Node{Kind: Scalar, Value: source.Value, Null: source.Tag == "!!null"}, nil
	}
	return nil, fmt.Errorf("unsupported YAML node kind %d at line %d", source.Kind, source.Line)
}
