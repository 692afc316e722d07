package utils

import (
	"bytes"
	"html"
	"strings"
	"unicode/utf8"
)

// ContainsAnyFold reports whether text contains any of the keywords,
// ignoring case.
func ContainsAnyFold(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if k != "" && strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

func CleanToValidUTF8(s string) string {
	var buf bytes.Buffer
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		buf.WriteRune(r)
		i += size
	}
	return buf.String()
}

// SafeText unescapes HTML entities and drops invalid UTF-8 bytes.
func SafeText(text string) string {
	return CleanToValidUTF8(html.UnescapeString(text))
}

func ToPointer[T any](value T) *T {
	return &value
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
