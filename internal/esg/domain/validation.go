package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type ValidationResult struct {
	Valid  bool
	Reason string
}

func validResult() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalidResult(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// ValidateValue checks a raw edit against the field's declared type and
// constraint. It is total and stateless: the same rule gates both live
// feedback and submission, so the two can never disagree.
func ValidateValue(field Field, raw any) ValidationResult {
	switch field.Type {
	case FieldTypeNumeric:
		return validateNumeric(field, raw)
	case FieldTypeBoolean:
		return validateBoolean(raw)
	case FieldTypeEnumerated:
		return validateEnumerated(field, raw)
	default:
		return validResult()
	}
}

func validateNumeric(field Field, raw any) ValidationResult {
	str, ok := stringValue(raw)
	if !ok {
		return invalidResult("must be a number")
	}
	if str == "" {
		return validResult()
	}

	value, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return invalidResult("must be a number")
	}
	if value < 0 {
		return invalidResult("negative values are not allowed")
	}
	if min := field.Constraint.Min; min != nil && value < *min {
		return invalidResult(fmt.Sprintf("must be at least %v", *min))
	}
	if max := field.Constraint.Max; max != nil && value > *max {
		return invalidResult(fmt.Sprintf("must be at most %v", *max))
	}

	return validResult()
}

func validateBoolean(raw any) ValidationResult {
	switch v := raw.(type) {
	case nil, bool:
		return validResult()
	case string:
		if v == "" || v == "true" || v == "false" {
			return validResult()
		}
	}
	return invalidResult("must be true/false")
}

func validateEnumerated(field Field, raw any) ValidationResult {
	str, ok := stringValue(raw)
	if !ok {
		return invalidResult("must be a string")
	}
	if str == "" {
		return validResult()
	}

	options := EnumOptions(field.Constraint.Pattern)
	if len(options) == 0 {
		// No resolvable option set: the field degrades to free text.
		return validResult()
	}
	for _, option := range options {
		if str == option {
			return validResult()
		}
	}

	return invalidResult(fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")))
}

func stringValue(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return strings.TrimSpace(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		return "", false
	}
}
