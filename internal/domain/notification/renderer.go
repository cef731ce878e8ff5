package notification

import (
	"fmt"
	"regexp"
)

// RenderedMessage holds the output of template rendering.
type RenderedMessage struct {
	Subject string
	HTML    string
	Text    string
}

// placeholderPattern matches {{name}} placeholders where name is an
// identifier. Anything that does not match, including partial or malformed
// braces, is left untouched.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)\}\}`)

// Render substitutes {{name}} placeholders in the template's subject and
// bodies with stringified values from vars. Every occurrence is replaced.
// Placeholders without a matching key stay verbatim in the output so that a
// missing optional variable never blocks delivery. Rendering is pure: same
// template and variables always produce byte-identical output.
func Render(t *EmailTemplate, vars map[string]any) RenderedMessage {
	return RenderedMessage{
		Subject: substitute(t.Subject(), vars),
		HTML:    substitute(t.HTMLBody(), vars),
		Text:    substitute(t.TextBody(), vars),
	}
}

func substitute(s string, vars map[string]any) string {
	if s == "" || len(vars) == 0 {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[2 : len(match)-2]
		value, ok := vars[name]
		if !ok {
			return match
		}
		return stringify(value)
	})
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case fmt.Stringer:
		return val.String()
	case float64:
		// JSON payloads decode numbers as float64; format integral values
		// without a trailing ".0" so order numbers and counts render cleanly.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
