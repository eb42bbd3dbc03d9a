package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/solidbots/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderError("unclosed template expression")
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", renderError("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", renderError(fmt.Sprintf("missing variable %q", key))
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// Validate checks that tmpl only refers to the given keys.
func Validate(tmpl string, keys ...string) error {
	if strings.TrimSpace(tmpl) == "" {
		return &domain.OpError{Op: "template.validate", Kind: domain.KindInvalidConfig, Err: domain.ErrEmptyTemplate}
	}
	vars := make(map[string]string, len(keys))
	for _, k := range keys {
		vars[k] = k
	}
	_, err := RenderString(tmpl, vars)
	return err
}

func renderError(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%w: %s", domain.ErrInvalidConfig, msg),
	}
}
