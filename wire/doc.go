// Package wire provides fixed-width big-endian integer encoding and
// bit-order utilities for device wire formats.
//
// # Byte order
//
// Every multi-byte integer on the wire is most-significant-byte first
// (network order), regardless of host order. This is the one bit-exact
// contract that persisted and transmitted encodings depend on: for a fixed
// width, the ordering of values maps onto the ordering of their encodings.
//
// # Operations
//
// Offset-based accessors (PutU16/ReadU16 and friends) mirror the style used
// when writing structures into preallocated buffers. Encode and Decode handle
// variable widths from 1 to 8 bytes, with width carried by the slice length.
//
// Byteswap reverses byte order without regard to meaning; ToBigEndian applies
// it only when the host is little-endian, with host order detected once at
// package init rather than per call. ReverseBits reverses bit order within a
// value and is unrelated to byte order.
package wire
