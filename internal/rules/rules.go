package rules

import (
	"regexp"
	"strings"

	"github.com/juparave/stylecheck/internal/domain"
)

// Patterns that should not exist
var forbidden = []domain.Rule{
	{
		ID:       "inline-color-style",
		Group:    domain.GroupForbidden,
		Pattern:  caseless(`style="[^"]*color:[^"]*"`),
		Message:  "Inline color styles are not allowed. Use CSS classes instead.",
		Severity: domain.SeverityError,
	},
	{
		ID:       "hardcoded-muted-rgba",
		Group:    domain.GroupForbidden,
		Pattern:  caseless(`rgba\(0,0,0,0\.6\)`),
		Message:  "Use var(--text-muted-color) or .text-muted class instead of hardcoded rgba(0,0,0,0.6)",
		Severity: domain.SeverityError,
	},
	{
		ID:       "complex-button-utilities",
		Group:    domain.GroupForbidden,
		Pattern:  caseless(`btn btn-sm text-sm px-3 py-1\.5 bg-gray-100 hover:bg-gray-200 text-gray-700`),
		Message:  "Use .btn .btn-light instead of complex utility classes",
		Severity: domain.SeverityWarning,
	},
}

// Patterns that suggest better alternatives
var suggestions = []domain.Rule{
	{
		ID:       "secondary-text-gray",
		Group:    domain.GroupSuggestion,
		Pattern:  caseless(`text-gray-[56]00`),
		Message:  "Consider using .text-muted for secondary text",
		Severity: domain.SeverityWarning,
	},
	{
		ID:       "redundant-text-gray-900",
		Group:    domain.GroupSuggestion,
		Pattern:  caseless(`text-gray-900`),
		Message:  "text-gray-900 may be unnecessary - default color might suffice",
		Severity: domain.SeverityInfo,
	},
}

// caseless compiles pattern so letters outside character classes match
// either ASCII case. (?i) would also fold non-ASCII variants such as
// U+017F for s and U+212A for k.
func caseless(pattern string) *regexp.Regexp {
	var sb strings.Builder
	inClass := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == '\\' && i+1 < len(pattern):
			sb.WriteByte(c)
			i++
			sb.WriteByte(pattern[i])
		case inClass:
			if c == ']' {
				inClass = false
			}
			sb.WriteByte(c)
		case c == '[':
			inClass = true
			sb.WriteByte(c)
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			lower, upper := c|0x20, c&^0x20
			sb.WriteByte('[')
			sb.WriteByte(lower)
			sb.WriteByte(upper)
			sb.WriteByte(']')
		default:
			sb.WriteByte(c)
		}
	}
	return regexp.MustCompile(sb.String())
}

// Forbidden returns the hard violation rules in declared order
func Forbidden() []domain.Rule {
	return append([]domain.Rule(nil), forbidden...)
}

// Suggestions returns the soft improvement rules in declared order
func Suggestions() []domain.Rule {
	return append([]domain.Rule(nil), suggestions...)
}

// Default returns every rule, forbidden group first
func Default() []domain.Rule {
	out := make([]domain.Rule, 0, len(forbidden)+len(suggestions))
	out = append(out, forbidden...)
	return append(out, suggestions...)
}

// Get returns a rule by ID
func Get(id string) (domain.Rule, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, r := range Default() {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Rule{}, false
}
