package wire

import "encoding/binary"

// hostLittleEndian is resolved once at init. ToBigEndian must not pay for the
// detection on every call.
var hostLittleEndian bool

func init() {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 0x0102)
	hostLittleEndian = probe[0] == 0x02
}

// PutU16 writes a uint16 to b at off, most significant byte first.
func PutU16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:off+2], v)
}

// PutU32 writes a uint32 to b at off, most significant byte first.
func PutU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

// PutU64 writes a uint64 to b at off, most significant byte first.
func PutU64(b []byte, off int, v uint64) {
	binary.BigEndian.PutUint64(b[off:off+8], v)
}

// ReadU16 reads a big-endian uint16 from b at off.
func ReadU16(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a big-endian uint32 from b at off.
func ReadU32(b []byte, off int) uint32 {
	return binary.BigEndian.Uint32(b[off : off+4])
}

// ReadU64 reads a big-endian uint64 from b at off.
func ReadU64(b []byte, off int) uint64 {
	return binary.BigEndian.Uint64(b[off : off+8])
}

// Encode returns v as width bytes, most significant byte first. Values wider
// than the requested width are truncated to their low width bytes. width is
// clamped to 1..8; out-of-range widths return nil.
func Encode(v uint64, width int) []byte {
	if width < 1 || width > 8 {
		return nil
	}
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// Decode interprets b as a big-endian unsigned integer. The width is carried
// by len(b); empty input or more than 8 bytes returns ErrInvalidLength.
func Decode(b []byte) (uint64, error) {
	if len(b) == 0 || len(b) > 8 {
		return 0, ErrInvalidLength
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// AppendUint appends the width-byte big-endian encoding of v to dst and
// returns the extended slice. Same width contract as Encode.
func AppendUint(dst []byte, v uint64, width int) []byte {
	if width < 1 || width > 8 {
		return dst
	}
	for i := width - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}
