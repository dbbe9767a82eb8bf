package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/everyside/vixel/internal/traverse"
)

// OrderConfig is the YAML form of a traversal order. It is written either
// as a bare name ("left_to_right") or as a mapping:
//
//	walk: top_to_bottom
//	then:
//	  alternating: [left_to_right, right_to_left]
type OrderConfig struct {
	Walk        string        `yaml:"walk,omitempty"`
	Then        *OrderConfig  `yaml:"then,omitempty"`
	Alternating []OrderConfig `yaml:"alternating,omitempty"`
}

var orderKeys = map[string]bool{"walk": true, "then": true, "alternating": true}

func (o *OrderConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*o = OrderConfig{Walk: node.Value}
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if !orderKeys[key] {
				return fmt.Errorf("line %d: unknown order key %q", node.Content[i].Line, key)
			}
		}
		type plain OrderConfig
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*o = OrderConfig(p)
		return nil
	}
	return fmt.Errorf("line %d: order must be a name or a mapping", node.Line)
}

func (o OrderConfig) MarshalYAML() (interface{}, error) {
	if o.Then == nil && len(o.Alternating) == 0 {
		return o.Walk, nil
	}
	type plain OrderConfig
	return plain(o), nil
}

// Build compiles the description into a fresh traverse.Order.
func (o OrderConfig) Build() (traverse.Order, error) {
	if len(o.Alternating) > 0 {
		if o.Walk != "" || o.Then != nil {
			return nil, fmt.Errorf("alternating cannot be combined with walk or then")
		}
		if len(o.Alternating) != 2 {
			return nil, fmt.Errorf("alternating needs exactly 2 orders, got %d", len(o.Alternating))
		}
		a, err := o.Alternating[0].Build()
		if err != nil {
			return nil, err
		}
		b, err := o.Alternating[1].Build()
		if err != nil {
			return nil, err
		}
		return traverse.Alternating(a, b), nil
	}

	if o.Walk == "" {
		return nil, fmt.Errorf("order needs walk or alternating")
	}
	var next traverse.Order
	if o.Then != nil {
		n, err := o.Then.Build()
		if err != nil {
			return nil, err
		}
		next = n
	}
	return traverse.Lookup(o.Walk, next)
}

func (o OrderConfig) String() string {
	switch {
	case len(o.Alternating) > 0:
		parts := make([]string, len(o.Alternating))
		for i, a := range o.Alternating {
			parts[i] = a.String()
		}
		return "alternating(" + strings.Join(parts, ", ") + ")"
	case o.Then != nil:
		return o.Walk + "(" + o.Then.String() + ")"
	default:
		return o.Walk
	}
}

// Walk builds an OrderConfig from a name and optional continuation.
func Walk(name string, then *OrderConfig) OrderConfig {
	return OrderConfig{Walk: name, Then: then}
}

func Alternate(a, b OrderConfig) *OrderConfig {
	return &OrderConfig{Alternating: []OrderConfig{a, b}}
}
