// Package macaddr formats and parses 6-byte hardware addresses.
package macaddr

import (
	"errors"
	"strings"

	"github.com/embedkit/embedkit/hexcodec"
)

// Size is the length of a hardware address in bytes.
const Size = 6

// ErrInvalid indicates text that does not spell a 6-byte address.
var ErrInvalid = errors.New("macaddr: invalid address")

// Addr is a 6-byte hardware address.
type Addr [Size]byte

// Format returns the address in compact lowercase hex ("aabbccddeeff").
func Format(a Addr) string {
	return hexcodec.Format(a[:])
}

// FormatPretty returns the address in uppercase colon notation
// ("AA:BB:CC:DD:EE:FF").
func FormatPretty(a Addr) string {
	var b strings.Builder
	b.Grow(3*Size - 1)
	for i, c := range a {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(hexcodec.Format([]byte{c}))
	}
	return strings.ToUpper(b.String())
}

// Parse reads an address in compact, colon- or dash-separated notation,
// either case.
func Parse(s string) (Addr, error) {
	clean := strings.NewReplacer(":", "", "-", "").Replace(s)
	var a Addr
	if len(clean) != 2*Size || hexcodec.Parse(clean, a[:]) != 2*Size {
		return Addr{}, ErrInvalid
	}
	return a, nil
}
