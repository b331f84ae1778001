package hexcodec

import (
	"math/bits"

	"github.com/embedkit/embedkit/wire"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"

	// prettySep separates byte pairs in FormatPretty output. Frozen: pretty
	// output is compared against golden strings in tests and device logs.
	prettySep = '.'
)

// Unsigned constrains the integer variants to unsigned fixed-width types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// widthOf returns the byte width of T.
func widthOf[T Unsigned]() int {
	return bits.Len64(uint64(^T(0))) / 8
}

// Format returns data as compact lowercase hex, two characters per byte.
func Format(data []byte) string {
	out := make([]byte, 2*len(data))
	for i, b := range data {
		out[2*i] = lowerDigits[b>>4]
		out[2*i+1] = lowerDigits[b&0x0F]
	}
	return string(out)
}

// FormatUint returns v as full-width lowercase hex, most significant byte
// first.
func FormatUint[T Unsigned](v T) string {
	return Format(wire.Encode(uint64(v), widthOf[T]()))
}

// FormatPretty returns data as uppercase byte pairs separated by '.'
// ("DE.AD.BE.EF").
func FormatPretty(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	out := make([]byte, 0, 3*len(data)-1)
	for i, b := range data {
		if i > 0 {
			out = append(out, prettySep)
		}
		out = append(out, upperDigits[b>>4], upperDigits[b&0x0F])
	}
	return string(out)
}

// FormatPrettyUint returns v in FormatPretty notation, most significant byte
// first.
func FormatPrettyUint[T Unsigned](v T) string {
	return FormatPretty(wire.Encode(uint64(v), widthOf[T]()))
}

// digit returns the value of a hex character. Both cases are accepted.
func digit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Parse decodes up to len(s) hex characters into dst and returns the number
// of characters consumed.
//
// Decoded bytes are written to the tail of dst: when s holds fewer than
// 2*len(dst) digits, the result sits in the final bytes as if s were
// zero-padded on the left, and the leading bytes of dst are not touched.
// A non-hex character stops the parse; callers compare the returned count
// against 2*len(dst) to detect short input.
func Parse(s string, dst []byte) int {
	chars := len(s)
	if max := 2 * len(dst); chars > max {
		chars = max
	}
	// First nibble index within dst, counting nibbles from the buffer start.
	start := 2*len(dst) - chars
	for i := 0; i < chars; i++ {
		v, ok := digit(s[i])
		if !ok {
			return i
		}
		n := start + i
		if n&1 == 0 {
			dst[n>>1] = v << 4
		} else {
			dst[n>>1] |= v
		}
	}
	return chars
}

// ParseUint decodes a hex string, most significant byte first, into an
// unsigned integer. It fails when s is empty, holds a non-hex character, or
// is wider than T.
func ParseUint[T Unsigned](s string) (T, bool) {
	width := widthOf[T]()
	if len(s) == 0 || len(s) > 2*width {
		return 0, false
	}
	buf := make([]byte, width)
	if Parse(s, buf) != len(s) {
		return 0, false
	}
	v, err := wire.Decode(buf)
	if err != nil {
		return 0, false
	}
	return T(v), true
}
