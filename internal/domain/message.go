package domain

import (
	"fmt"
	"strings"
)

// RenderMessage substitutes {name} slots from values. Doubled braces are literal
// braces. Unbalanced braces, empty or unknown slot names, and slots carrying a
// conversion or format spec fail with ErrTemplateFormat.
func RenderMessage(template string, values map[string]string) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				out.WriteByte('{')
				i++
				continue
			}

			end := strings.IndexAny(template[i+1:], "{}")
			if end < 0 || template[i+1+end] != '}' {
				return "", fmt.Errorf("%w: unclosed '{' at position %d", ErrTemplateFormat, i)
			}

			name := template[i+1 : i+1+end]
			if name == "" {
				return "", fmt.Errorf("%w: empty placeholder at position %d", ErrTemplateFormat, i)
			}
			if strings.ContainsAny(name, ":!") {
				return "", fmt.Errorf("%w: format specs are not supported in {%s}", ErrTemplateFormat, name)
			}

			value, ok := values[name]
			if !ok {
				return "", fmt.Errorf("%w: unknown placeholder {%s}", ErrTemplateFormat, name)
			}
			out.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				out.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at position %d", ErrTemplateFormat, i)
		default:
			out.WriteByte(c)
		}
	}

	return out.String(), nil
}

// RenderShiftMessage fills the {start} and {end} slots of template with the window
// times. An empty template falls back to FallbackMessage; whitespace is kept as typed.
func RenderShiftMessage(template string, window ShiftWindow) (string, error) {
	if template == "" {
		template = FallbackMessage
	}

	return RenderMessage(template, map[string]string{
		SlotStart: FormatTime(window.Start),
		SlotEnd:   FormatTime(window.End),
	})
}
