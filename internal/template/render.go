package template

import (
	"fmt"
	"strings"

	"github.com/eduforge/promptgen-api/internal/domain"
)

// Render substitutes the field values into the template's placeholders
// and returns the resulting prompt string.
//
// The field set must match the template's placeholder set exactly:
// every placeholder needs a value (ErrMissingPlaceholder otherwise, the
// failing name wrapped into the message) and keys the template does not
// declare are rejected with ErrUnexpectedPlaceholder. Values are
// inserted verbatim; empty strings are legal. Substitution is literal,
// with no escaping and no recursive expansion, so Render is pure: the
// same template and fields always produce the same output.
func Render(tpl Template, fields domain.FieldSet) (string, error) {
	declared := make(map[string]struct{}, len(tpl.Placeholders))
	for _, name := range tpl.Placeholders {
		declared[name] = struct{}{}
	}

	for key := range fields {
		if _, ok := declared[key]; !ok {
			return "", fmt.Errorf("%w: %q is not a placeholder of the %s template",
				ErrUnexpectedPlaceholder, key, tpl.Kind)
		}
	}

	pairs := make([]string, 0, 2*len(tpl.Placeholders))
	for _, name := range tpl.Placeholders {
		value, ok := fields[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMissingPlaceholder, name)
		}
		pairs = append(pairs, "{"+name+"}", value)
	}

	return strings.NewReplacer(pairs...).Replace(tpl.Text), nil
}
