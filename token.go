package content

import (
	"regexp"
	"strings"
)

// tokenPattern matches {{key}} where key is word characters only. No nested
// braces, no escaping. Every token operation in this package goes through
// this single pattern via ScanTokens.
var tokenPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// TokenSpan locates one {{key}} occurrence inside a text. Start and End are
// byte offsets covering the braces, so text[Start:End] == "{{" + Key + "}}".
type TokenSpan struct {
	Start int
	End   int
	Key   string
}

// ScanTokens returns every token occurrence in order of appearance,
// duplicates included.
func ScanTokens(text string) []TokenSpan {
	matches := tokenPattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return nil
	}

	spans := make([]TokenSpan, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, TokenSpan{
			Start: m[0],
			End:   m[1],
			Key:   text[m[2]:m[3]],
		})
	}

	return spans
}

// ExtractVariables returns the key of every token in order of appearance.
// Duplicates are kept; callers needing a unique list must de-duplicate
// themselves.
func ExtractVariables(text string) []string {
	spans := ScanTokens(text)
	if spans == nil {
		return nil
	}

	keys := make([]string, 0, len(spans))
	for _, span := range spans {
		keys = append(keys, span.Key)
	}

	return keys
}

// uniqueVariables is ExtractVariables with duplicates removed, order of
// first appearance preserved.
func uniqueVariables(text string) []string {
	seen := make(map[string]struct{})

	var keys []string
	for _, key := range ExtractVariables(text) {
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

// ReplaceVariables substitutes every {{key}} with values[key] in a single
// pass. Tokens without a value are left verbatim so that a marketer sees the
// unfilled placeholder instead of silently sending blank content.
func ReplaceVariables(text string, values map[string]string) string {
	spans := ScanTokens(text)
	if len(spans) == 0 {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))

	last := 0
	for _, span := range spans {
		out.WriteString(text[last:span.Start])

		if value, ok := values[span.Key]; ok {
			out.WriteString(value)
		} else {
			out.WriteString(text[span.Start:span.End])
		}

		last = span.End
	}

	out.WriteString(text[last:])

	return out.String()
}
