package jdig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes data into the same document shapes as UnmarshalJSON:
// mappings as D with key order preserved, sequences as A, scalars as their
// default yaml types. Alias nodes are resolved in place. With duplicate keys
// the first occurrence wins; later ones are dropped.
func UnmarshalYAML(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if root.Kind == 0 {
		return nil, nil // empty input
	}
	return yamlValue(&root)
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlValue(n.Content[0])
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	case yaml.MappingNode:
		doc := D{}
		// Content holds alternating key and value nodes.
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("yaml key at line %d: %w", n.Content[i].Line, err)
			}
			if _, found, _ := Index(doc, key); found {
				continue
			}
			val, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			doc = append(doc, E{Key: key, Value: val})
		}
		return doc, nil
	case yaml.SequenceNode:
		arr := A{}
		for _, elem := range n.Content {
			val, err := yamlValue(elem)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("yaml scalar at line %d: %w", n.Line, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("yaml node kind %d at line %d not supported", n.Kind, n.Line)
	}
}
