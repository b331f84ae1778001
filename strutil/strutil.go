// Package strutil holds the string helpers used by device names, entity IDs
// and command parsing.
package strutil

import (
	"hash/fnv"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)
)

// LowerCase returns s with every letter lowercased.
func LowerCase(s string) string { return lower.String(s) }

// UpperCase returns s with every letter uppercased.
func UpperCase(s string) string { return upper.String(s) }

// SnakeCase lowercases s and replaces spaces with underscores.
func SnakeCase(s string) string {
	return strings.ReplaceAll(lower.String(s), " ", "_")
}

// Sanitize strips every character except ASCII letters, digits, dashes and
// underscores. The result is safe for topic names and filenames.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate cuts s to at most n bytes.
func Truncate(s string, n int) string {
	if n < 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

// Until returns the part of s before the first occurrence of ch, or all of s
// when ch is absent.
func Until(s string, ch byte) string {
	if i := strings.IndexByte(s, ch); i >= 0 {
		return s[:i]
	}
	return s
}

// FNV1Hash returns the 32-bit FNV-1a hash of s, used for stable object IDs.
func FNV1Hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// EqualsIgnoreCase reports whether a and b are equal under case folding.
func EqualsIgnoreCase(a, b string) bool { return strings.EqualFold(a, b) }

// Number constrains ParseNumber to the built-in numeric types. Defined types
// are excluded so the per-type dispatch stays exhaustive.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// ParseNumber parses s as a decimal number of type T. The whole string must
// be consumed and the value must be representable in T; anything else
// reports false with the zero value.
func ParseNumber[T Number](s string) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		v, err := strconv.ParseFloat(s, numberBits(zero))
		if err != nil {
			return zero, false
		}
		return T(v), true
	case int, int8, int16, int32, int64:
		v, err := strconv.ParseInt(s, 10, numberBits(zero))
		if err != nil {
			return zero, false
		}
		return T(v), true
	default:
		v, err := strconv.ParseUint(s, 10, numberBits(zero))
		if err != nil {
			return zero, false
		}
		return T(v), true
	}
}

// numberBits returns the bit size strconv expects for v's type.
func numberBits(v any) int {
	switch v.(type) {
	case int, uint:
		return strconv.IntSize
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32, float32:
		return 32
	default:
		return 64
	}
}
