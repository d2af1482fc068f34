// Package jsonrepair decodes JSON produced by a generative model. Model
// output can arrive wrapped in markdown fences, surrounded by prose, or
// truncated mid-string by token limits, so decoding is best-effort: direct
// parse first, then a syntactic repair pass, then a caller-supplied fallback.
// A decode problem never becomes an error.
package jsonrepair

import (
	"encoding/json"
	"strings"
)

// Outcome reports which tier produced the returned value.
type Outcome int

const (
	OutcomeParsed Outcome = iota
	OutcomeRepaired
	OutcomeFallback
)

// Extract parses raw into T. The repair pass only fixes truncation artefacts;
// no field-level validation happens here, so callers must tolerate missing
// fields on the non-fallback paths.
func Extract[T any](raw string, fallback T) (T, Outcome) {
	fragment := Fragment(raw)
	if fragment != "" {
		var direct T
		if err := json.Unmarshal([]byte(fragment), &direct); err == nil {
			return direct, OutcomeParsed
		}
		var repaired T
		if err := json.Unmarshal([]byte(Repair(fragment)), &repaired); err == nil {
			return repaired, OutcomeRepaired
		}
	}
	return fallback, OutcomeFallback
}

// Fragment strips markdown code fences and any prose around the outermost
// JSON value.
func Fragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	} else if start >= 0 {
		text = text[start:]
	}
	return strings.TrimSpace(text)
}

// Repair fixes a truncated JSON document: an unterminated trailing string is
// removed along with any dangling separator it leaves behind, then the open
// brace/bracket stack is closed in order.
func Repair(s string) string {
	var stack []byte
	inString := false
	escaped := false
	stringStart := -1

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
			stringStart = i
		case '{', '[':
			stack = append(stack, c)
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if inString && stringStart >= 0 {
		s = s[:stringStart]
	}
	s = trimDanglingSeparators(s)

	var b strings.Builder
	b.WriteString(s)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

// trimDanglingSeparators drops a trailing comma, or a trailing "key": pair
// left over after the unterminated value was removed.
func trimDanglingSeparators(s string) string {
	for {
		s = strings.TrimRight(s, " \t\r\n")
		if strings.HasSuffix(s, ",") {
			s = s[:len(s)-1]
			continue
		}
		if strings.HasSuffix(s, ":") {
			trimmed := strings.TrimRight(s[:len(s)-1], " \t\r\n")
			if strings.HasSuffix(trimmed, "\"") {
				if idx := openingQuote(trimmed); idx >= 0 {
					s = trimmed[:idx]
					continue
				}
			}
			return trimmed
		}
		return s
	}
}

// openingQuote locates the quote that opens the string closing at the end of s.
func openingQuote(s string) int {
	for i := len(s) - 2; i >= 0; i-- {
		if s[i] == '"' && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}
	return -1
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
