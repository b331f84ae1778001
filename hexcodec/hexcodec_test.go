package hexcodec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{0x00}, "00"},
		{[]byte{0xDE, 0xAD, 0xBE, 0xEF}, "deadbeef"},
		{[]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}, "0123456789abcdef"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Format(c.in))
	}
}

func TestFormatLengthAndCharset(t *testing.T) {
	for n := 1; n <= 8; n++ {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(0x10*i + n)
		}
		s := Format(data)
		require.Len(t, s, 2*n)
		for _, r := range s {
			require.Contains(t, lowerDigits, string(r))
		}

		// Full round trip back through Parse.
		out := make([]byte, n)
		require.Equal(t, 2*n, Parse(s, out))
		require.Equal(t, data, out)
	}
}

func TestFormatUint(t *testing.T) {
	require.Equal(t, "ab", FormatUint(uint8(0xAB)))
	require.Equal(t, "0123", FormatUint(uint16(0x0123)))
	require.Equal(t, "00bc614e", FormatUint(uint32(12345678)))
	require.Equal(t, "0123456789abcdef", FormatUint(uint64(0x0123456789abcdef)))
}

// FormatPretty output is part of the tool-facing surface; these are golden
// strings.
func TestFormatPretty(t *testing.T) {
	require.Equal(t, "", FormatPretty(nil))
	require.Equal(t, "DE", FormatPretty([]byte{0xDE}))
	require.Equal(t, "DE.AD.BE.EF", FormatPretty([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
	require.Equal(t, "00.01.02", FormatPretty([]byte{0x00, 0x01, 0x02}))
	require.Equal(t, "BE.EF", FormatPrettyUint(uint16(0xBEEF)))
}

func TestParseExact(t *testing.T) {
	out := make([]byte, 4)
	n := Parse("deadbeef", out)
	require.Equal(t, 8, n)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, out)
}

func TestParseCaseInsensitive(t *testing.T) {
	a := make([]byte, 3)
	b := make([]byte, 3)
	require.Equal(t, 6, Parse("aAbBcC", a))
	require.Equal(t, 6, Parse("AabbCc", b))
	require.Equal(t, a, b)
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, a)
}

// Short input lands at the tail of the destination, leading bytes untouched.
func TestParseRightAligned(t *testing.T) {
	out := make([]byte, 4)
	n := Parse("ab", out)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0xAB}, out)

	// Pre-existing leading bytes stay as they were.
	out = []byte{0x11, 0x22, 0x33, 0x44}
	n = Parse("ab", out)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0xAB}, out)

	// Odd digit counts shift by a nibble.
	out = make([]byte, 2)
	n = Parse("abc", out)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{0x0A, 0xBC}, out)
}

func TestParseStopsAtMalformed(t *testing.T) {
	out := make([]byte, 2)
	require.Equal(t, 2, Parse("abxy", out))
	require.Equal(t, 0, Parse("zz", make([]byte, 2)))
}

func TestParseOversizedInput(t *testing.T) {
	// Only 2*len(dst) characters are consumed.
	out := make([]byte, 2)
	require.Equal(t, 4, Parse("deadbeef", out))
	require.Equal(t, []byte{0xDE, 0xAD}, out)
}

func TestParseUint(t *testing.T) {
	v8, ok := ParseUint[uint8]("ff")
	require.True(t, ok)
	require.Equal(t, uint8(0xFF), v8)

	v16, ok := ParseUint[uint16]("0123")
	require.True(t, ok)
	require.Equal(t, uint16(0x0123), v16)

	// Short input parses as the numeric value, zero-extended on the left.
	v32, ok := ParseUint[uint32]("12ab")
	require.True(t, ok)
	require.Equal(t, uint32(0x12AB), v32)

	v64, ok := ParseUint[uint64]("0123456789abcdef")
	require.True(t, ok)
	require.Equal(t, uint64(0x0123456789abcdef), v64)
}

func TestParseUintRejects(t *testing.T) {
	_, ok := ParseUint[uint8]("")
	require.False(t, ok, "empty input")

	_, ok = ParseUint[uint8]("123")
	require.False(t, ok, "wider than the type")

	_, ok = ParseUint[uint16]("12g4")
	require.False(t, ok, "malformed character")

	_, ok = ParseUint[uint32]("0x12")
	require.False(t, ok, "prefixes are not part of the format")
}

func BenchmarkFormat(b *testing.B) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x23, 0x45, 0x67}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		benchSink = Format(data)
	}
}

var benchSink string
