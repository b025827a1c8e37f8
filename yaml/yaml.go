// Package yaml provides a YAML parser for codable.
//
// YAML is a superset of JSON, so documents produced by codable.Encode parse
// here as well. Mapping order is preserved.
package yaml

import (
	"errors"
	"fmt"

	"github.com/zoobzio/codable"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedNode indicates YAML content with no JSON equivalent.
var ErrUnsupportedNode = errors.New("unsupported YAML node")

// yamlParser implements codable.Parser for YAML.
type yamlParser struct{}

// New returns a YAML parser.
func New() codable.Parser {
	return &yamlParser{}
}

// ContentType returns the MIME type for YAML.
func (p *yamlParser) ContentType() string {
	return "application/yaml"
}

// Parse decodes the first YAML document in data into a value tree.
func (p *yamlParser) Parse(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		// Empty input
		return nil, nil
	}
	return convert(&doc)
}

func convert(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return convert(node.Content[0])
	case yaml.AliasNode:
		return convert(node.Alias)
	case yaml.MappingNode:
		obj := codable.NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non-scalar mapping key at line %d", ErrUnsupportedNode, keyNode.Line)
			}
			if keyNode.ShortTag() == "!!merge" {
				return nil, fmt.Errorf("%w: merge key at line %d", ErrUnsupportedNode, keyNode.Line)
			}
			v, err := convert(valueNode)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, v)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := convert(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalar(node)
	}
	return nil, fmt.Errorf("%w: kind %d at line %d", ErrUnsupportedNode, node.Kind, node.Line)
}

func scalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := node.Decode(&b)
		return b, err
	case "!!int":
		var i int
		if err := node.Decode(&i); err != nil {
			var f float64
			if ferr := node.Decode(&f); ferr != nil {
				return nil, err
			}
			return f, nil
		}
		return i, nil
	case "!!float":
		var f float64
		err := node.Decode(&f)
		return f, err
	}
	// !!str, !!timestamp, !!binary and custom tags stay textual.
	return node.Value, nil
}
