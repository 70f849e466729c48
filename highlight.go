package content

import (
	"html"
	"strings"
)

// Annotation classifies one token occurrence for the editor: whether the key
// exists in the variable registry, and the value it would resolve to. An
// empty Resolved with Valid true means the registry knows the key but the
// caller supplied no value for it.
type Annotation struct {
	TokenSpan

	Valid    bool
	Resolved string
}

// Annotate scans text and classifies every token against the registry and
// the supplied values. Pure and total; malformed text simply yields fewer
// annotations.
func Annotate(text string, values map[string]string) []Annotation {
	spans := ScanTokens(text)
	if spans == nil {
		return nil
	}

	annotations := make([]Annotation, 0, len(spans))
	for _, span := range spans {
		annotations = append(annotations, Annotation{
			TokenSpan: span,
			Valid:     IsValidVariable(span.Key),
			Resolved:  values[span.Key],
		})
	}

	return annotations
}

// InvalidVariables returns the distinct unknown keys in text, in order of
// first appearance. Used for warning badges only; an unknown variable never
// blocks rendering or submission.
func InvalidVariables(text string) []string {
	var invalid []string
	for _, key := range uniqueVariables(text) {
		if !IsValidVariable(key) {
			invalid = append(invalid, key)
		}
	}

	return invalid
}

// RenderPreview substitutes tokens like ReplaceVariables but wraps each
// substituted value in a <mark> so the editor can style what came from
// personalization. Tokens without a value keep their literal form,
// unwrapped.
func RenderPreview(text string, values map[string]string) string {
	return renderSpans(text, values, func(sb *strings.Builder, span TokenSpan, value string, ok bool) {
		if !ok {
			sb.WriteString("{{" + span.Key + "}}")
			return
		}

		sb.WriteString(`<mark class="token-value">`)
		sb.WriteString(html.EscapeString(value))
		sb.WriteString(`</mark>`)
	})
}

// RenderEditable wraps every token in a badge span for edit mode. Known
// variables get the valid class and carry their resolved value (or the
// registry example when no value is supplied) as the tooltip; unknown ones
// get the invalid class and an "unknown variable" tooltip.
func RenderEditable(text string, values map[string]string) string {
	return renderSpans(text, values, func(sb *strings.Builder, span TokenSpan, value string, ok bool) {
		variable, known := FindVariable(span.Key)

		class := "variable-badge invalid"
		title := "unknown variable"

		if known {
			class = "variable-badge valid"

			switch {
			case ok:
				title = value
			default:
				title = variable.Example
			}
		}

		sb.WriteString(`<span class="` + class + `" title="` + html.EscapeString(title) + `">`)
		sb.WriteString("{{" + span.Key + "}}")
		sb.WriteString(`</span>`)
	})
}

func renderSpans(text string, values map[string]string, write func(sb *strings.Builder, span TokenSpan, value string, ok bool)) string {
	spans := ScanTokens(text)
	if len(spans) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))

	last := 0
	for _, span := range spans {
		sb.WriteString(text[last:span.Start])

		value, ok := values[span.Key]
		write(&sb, span, value, ok)

		last = span.End
	}

	sb.WriteString(text[last:])

	return sb.String()
}
