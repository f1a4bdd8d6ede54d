package domain

import (
	"regexp"
	"strings"
)

var enumGroupPattern = regexp.MustCompile(`\(([^)]+)\)`)

// EnumOptions extracts the option set from a constrained pattern: the first
// parenthesized group split on "|", order and duplicates preserved. A pattern
// without such a group yields no options and the field degrades to free-text
// entry.
func EnumOptions(pattern string) []string {
	match := enumGroupPattern.FindStringSubmatch(pattern)
	if match == nil {
		return []string{}
	}
	return strings.Split(match[1], "|")
}
