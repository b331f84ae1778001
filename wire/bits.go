package wire

import "math/bits"

// Byteswap16 reverses the byte order of v.
func Byteswap16(v uint16) uint16 { return bits.ReverseBytes16(v) }

// Byteswap32 reverses the byte order of v.
func Byteswap32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// Byteswap64 reverses the byte order of v.
func Byteswap64(v uint64) uint64 { return bits.ReverseBytes64(v) }

// ToBigEndian16 converts v between host order and big-endian wire order.
// The conversion is its own inverse.
func ToBigEndian16(v uint16) uint16 {
	if hostLittleEndian {
		return Byteswap16(v)
	}
	return v
}

// ToBigEndian32 converts v between host order and big-endian wire order.
func ToBigEndian32(v uint32) uint32 {
	if hostLittleEndian {
		return Byteswap32(v)
	}
	return v
}

// ToBigEndian64 converts v between host order and big-endian wire order.
func ToBigEndian64(v uint64) uint64 {
	if hostLittleEndian {
		return Byteswap64(v)
	}
	return v
}

// ReverseBits8 reverses the bit order of v: adjacent bits swap, then 2-bit
// pairs, then nibbles.
func ReverseBits8(v uint8) uint8 {
	v = (v&0xAA)>>1 | (v&0x55)<<1
	v = (v&0xCC)>>2 | (v&0x33)<<2
	v = (v&0xF0)>>4 | (v&0x0F)<<4
	return v
}

// ReverseBits16 reverses the bit order of v, composed from the 8-bit swap.
func ReverseBits16(v uint16) uint16 {
	return uint16(ReverseBits8(uint8(v)))<<8 | uint16(ReverseBits8(uint8(v>>8)))
}

// ReverseBits32 reverses the bit order of v, composed from the 16-bit swap.
func ReverseBits32(v uint32) uint32 {
	return uint32(ReverseBits16(uint16(v)))<<16 | uint32(ReverseBits16(uint16(v>>16)))
}
