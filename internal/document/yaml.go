package document

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML (or JSON) document, keeping mapping keys in source order.
func ParseYAML(b []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(b, &root); err != nil {
		return Value{}, fmt.Errorf("invalid YAML document: %w", err)
	}
	if root.Kind == 0 {
		return Value{}, ErrEmptyDocument
	}
	return fromNode(&root, map[*yaml.Node]bool{})
}

func fromNode(n *yaml.Node, visiting map[*yaml.Node]bool) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromNode(n.Content[0], visiting)
	case yaml.AliasNode:
		if visiting[n.Alias] {
			return Value{}, fmt.Errorf("line %d: recursive alias %q", n.Line, n.Value)
		}
		visiting[n.Alias] = true
		defer delete(visiting, n.Alias)
		return fromNode(n.Alias, visiting)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromNode(n.Content[i+1], visiting)
			if err != nil {
				return Value{}, err
			}
			obj.Set(n.Content[i].Value, val)
		}
		return obj.Value(), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromNode(c, visiting)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.ScalarNode:
		return fromScalar(n)
	default:
		return Value{}, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// out of int64 range: keep the literal
			return Number(n.Value), nil
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return String(n.Value), nil
		}
		return Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
	default:
		return String(n.Value), nil
	}
}
