// Package forms implements descriptor-driven input validation: each
// entity declares an ordered field list, and Decode checks a submitted
// field-value mapping against it, reporting every failing field in one
// pass. Nothing here touches storage; uniqueness and reference checks
// belong to the per-entity validate hooks that run alongside.
package forms

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Kind int

const (
	Text Kind = iota
	Email
	Decimal
	Int
	UInt
	Bool
	Enum
	IntEnum
	Date
	DateTime
	Ref
)

// Field describes one editable attribute of an entity: its wire name,
// value kind, and constraints. Descriptors are consumed generically by
// the CRUD layer and double as the "form" payload for create/edit views.
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label,omitempty"`
	Kind     Kind     `json:"-"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Min      *float64 `json:"min,omitempty"`
	Enum     []string `json:"enum,omitempty"`
	IntEnum  []int    `json:"int_enum,omitempty"`
}

var kindNames = map[Kind]string{
	Text:     "text",
	Email:    "email",
	Decimal:  "decimal",
	Int:      "int",
	UInt:     "uint",
	Bool:     "bool",
	Enum:     "enum",
	IntEnum:  "int_enum",
	Date:     "date",
	DateTime: "datetime",
	Ref:      "ref",
}

var titleCaser = cases.Title(language.English)

// DisplayLabel falls back to a title-cased wire name when no explicit
// label was declared ("pay_rate" -> "Pay Rate").
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return titleCaser.String(strings.ReplaceAll(f.Name, "_", " "))
}

// Describe returns the field list with display metadata filled in,
// suitable as a form payload.
func Describe(fields []Field) []Field {
	out := make([]Field, len(fields))
	for i, f := range fields {
		f.Label = f.DisplayLabel()
		f.Type = kindNames[f.Kind]
		out[i] = f
	}
	return out
}

func MinValue(v float64) *float64 {
	return &v
}
