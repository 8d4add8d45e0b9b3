package tool

import (
	"slices"

	"github.com/ardnew/argot/arg"
	"github.com/ardnew/argot/pkg"
)

// Schema is the structural input schema of one tool: an object with one
// property per flag declaration.
type Schema struct {
	Type       string               `json:"type"`
	Properties map[string]*Property `json:"properties,omitempty"`
	Required   []string             `json:"required,omitempty"`
}

// Property describes one named argument in a tool's input schema.
type Property struct {
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Enum        []any     `json:"enum,omitempty"`
	Default     any       `json:"default,omitempty"`
	Items       *Property `json:"items,omitempty"`
}

// schemaFor translates a flag set into a tool input schema. Flags with
// [arg.Arg.Multiple] become arrays of their base type; mandatory flags
// without defaults become required properties.
func schemaFor(set *arg.Set) *Schema {
	s := &Schema{
		Type:       "object",
		Properties: make(map[string]*Property, set.Len()),
	}

	for a := range set.All() {
		p := &Property{
			Type:        typeTag(a.Kind),
			Description: a.Help,
			Default:     a.Default,
		}

		if len(a.Enum) > 0 {
			p.Enum = slices.Collect(pkg.AnyValues(a.Enum...))
		}

		if a.Multiple {
			p = &Property{
				Type:        "array",
				Description: a.Help,
				Default:     a.Default,
				Items: &Property{
					Type: p.Type,
					Enum: p.Enum,
				},
			}
		}

		s.Properties[a.Name] = p

		if a.Mandatory && a.Default == nil {
			s.Required = append(s.Required, a.Name)
		}
	}

	return s
}

// typeTag maps a value kind to its schema type. Custom conversion
// functions consume raw tokens, so they advertise as strings.
func typeTag(k arg.Kind) string {
	switch k {
	case arg.KindNumber:
		return "number"
	case arg.KindBoolean:
		return "boolean"
	default:
		return "string"
	}
}
