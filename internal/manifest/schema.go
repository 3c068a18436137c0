package manifest

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"strenum/internal/mapping"
)

// exprTag marks a non-string annotation when a manifest is written back.
const exprTag = "!expr"

// File is the root of a manifest.
type File struct {
	// Package is the Go package name of the generated file.
	Package string `yaml:"package"`
	// Output is the generated file name, relative to the manifest.
	Output string `yaml:"output,omitempty"`
	// Enums in generation order.
	Enums []Enum `yaml:"enums"`
}

// Enum declares one enum type.
type Enum struct {
	Type       string    `yaml:"type"`
	Underlying string    `yaml:"underlying,omitempty"`
	Doc        string    `yaml:"doc,omitempty"`
	Variants   []Variant `yaml:"variants"`
}

// Variant is one declared variant.
type Variant struct {
	Name    string
	Literal mapping.Literal
	// Line is the manifest line, zero when built in code.
	Line int
}

// UnmarshalYAML accepts either a bare name or a single-key mapping.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	v.Line = node.Line

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: variant name %q is not a string", node.Line, node.Value)
		}

		v.Name = node.Value
		v.Literal = mapping.NoLiteral()

		return nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: variant mapping must have exactly one key", node.Line)
		}

		key, val := node.Content[0], node.Content[1]
		if key.Kind != yaml.ScalarNode || key.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: variant name must be a string", key.Line)
		}

		v.Name = key.Value
		v.Literal = literalFromNode(val)

		return nil

	default:
		return fmt.Errorf("line %d: expected variant name or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the variant in the same shape it is read.
func (v Variant) MarshalYAML() (any, error) {
	switch v.Literal.Kind {
	case mapping.LiteralString:
		return map[string]string{v.Name: v.Literal.Value}, nil

	case mapping.LiteralOther:
		return &yaml.Node{
			Kind: yaml.MappingNode,
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Name},
				{Kind: yaml.ScalarNode, Tag: exprTag, Value: v.Literal.Source},
			},
		}, nil

	default:
		return v.Name, nil
	}
}

func literalFromNode(n *yaml.Node) mapping.Literal {
	if n.Kind == yaml.ScalarNode {
		switch n.ShortTag() {
		case "!!str":
			return mapping.StringLiteral(n.Value)
		case "!!null":
			return mapping.NoLiteral()
		default:
			return mapping.OtherLiteral(n.Value)
		}
	}

	out, err := yaml.Marshal(n)
	if err != nil {
		return mapping.OtherLiteral(fmt.Sprintf("<%v>", n.Kind))
	}

	return mapping.OtherLiteral(strings.TrimSpace(string(out)))
}
