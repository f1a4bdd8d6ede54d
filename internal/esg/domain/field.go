package domain

import (
	"fmt"
)

type FieldType string

const (
	FieldTypeNumeric    FieldType = "numeric"
	FieldTypeBoolean    FieldType = "boolean"
	FieldTypeEnumerated FieldType = "enumerated"
	FieldTypeText       FieldType = "text"
)

// NormalizeFieldType maps a wire-level type tag to its canonical variant. The
// backend schema file declares enumerated fields as "regex" with a pattern
// whose alternation group carries the option set.
func NormalizeFieldType(raw string) (FieldType, error) {
	switch raw {
	case "numeric":
		return FieldTypeNumeric, nil
	case "boolean":
		return FieldTypeBoolean, nil
	case "regex", "enumerated":
		return FieldTypeEnumerated, nil
	case "text", "":
		return FieldTypeText, nil
	default:
		return "", fmt.Errorf("unknown field type: %q", raw)
	}
}

type Method string

const (
	MethodInput Method = "input"
	MethodKPI   Method = "kpi"
)

func ParseMethod(raw string) (Method, error) {
	switch raw {
	case "input", "":
		return MethodInput, nil
	case "kpi":
		return MethodKPI, nil
	default:
		return "", fmt.Errorf("unknown method: %q", raw)
	}
}

// Constraint carries the type-specific validation rule of a field. Min and
// Max apply to numeric fields only, Pattern to enumerated fields only.
type Constraint struct {
	Min     *float64
	Max     *float64
	Pattern string
}

// Field is the immutable definition of one reportable ESG metric.
type Field struct {
	Name       string
	Label      string
	Type       FieldType
	Method     Method
	Category   string
	Theme      string
	Unit       string
	Reference  string
	Constraint Constraint
}

// CheckDefinition verifies that type and constraint are mutually consistent.
// A schema carrying an inconsistent definition is rejected at load time.
func (f Field) CheckDefinition() error {
	if f.Name == "" {
		return fmt.Errorf("field without a name")
	}

	switch f.Type {
	case FieldTypeNumeric:
		if f.Constraint.Min != nil && f.Constraint.Max != nil && *f.Constraint.Min > *f.Constraint.Max {
			return fmt.Errorf("field %s: min bound %v above max bound %v", f.Name, *f.Constraint.Min, *f.Constraint.Max)
		}
	case FieldTypeEnumerated:
		if f.Constraint.Pattern == "" {
			return fmt.Errorf("field %s: enumerated field without a pattern", f.Name)
		}
	case FieldTypeBoolean, FieldTypeText:
	default:
		return fmt.Errorf("field %s: unknown type %q", f.Name, f.Type)
	}

	return nil
}

// Options resolves the enumerated option set of the field. Non-enumerated
// fields have none.
func (f Field) Options() []string {
	if f.Type != FieldTypeEnumerated {
		return nil
	}
	return EnumOptions(f.Constraint.Pattern)
}

// FieldsByName indexes a schema by field name. Names are unique across the
// whole schema; a duplicate is a definition error surfaced at load time.
func FieldsByName(fields []Field) (map[string]Field, error) {
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		if _, ok := byName[f.Name]; ok {
			return nil, fmt.Errorf("duplicated field name: %s", f.Name)
		}
		byName[f.Name] = f
	}
	return byName, nil
}
