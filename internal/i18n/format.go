package i18n

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNegativeCount means a negative counter reached the formatter.
// That is an upstream data bug, not a user-recoverable condition.
var ErrNegativeCount = errors.New("count cannot be negative")

// PluralTemplates is one singular/plural template pair. Each counter
// (followers headline, posts, threads, per-user followers) carries its
// own pair; they are never shared or derived from one another.
type PluralTemplates struct {
	Singular string
	Plural   string
}

// FormatCount picks the singular template iff count == 1 and the
// plural template otherwise, 0 included, binding {count} to the value.
func FormatCount(count int64, templates PluralTemplates) (string, error) {
	if count < 0 {
		return "", ErrNegativeCount
	}
	if count == 1 {
		return Bind(templates.Singular, "count", "1"), nil
	}
	return Bind(templates.Plural, "count", strconv.FormatInt(count, 10)), nil
}

// Bind substitutes a single named {placeholder} with value. No nested
// or recursive substitution.
func Bind(template string, name string, value string) string {
	return strings.ReplaceAll(template, "{"+name+"}", value)
}
