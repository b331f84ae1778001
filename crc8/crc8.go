// Package crc8 implements an 8-bit cyclic redundancy check.
//
// Generator polynomial 0x07 (x^8 + x^2 + x + 1), initial accumulator 0x00,
// no reflection, no final XOR — the CRC-8/SMBUS parameter set. These
// constants must never change within one deployed system: every stored or
// transmitted checksum depends on them.
package crc8

const (
	// poly is the generator polynomial, MSB-first.
	poly = 0x07

	// Init is the initial accumulator value. Checksum of empty input
	// returns Init.
	Init = 0x00
)

// Checksum returns the CRC-8 of data in a single pass. Each input byte is
// XORed into the accumulator, then shifted out a bit at a time, folding in
// the polynomial whenever the high bit falls off.
func Checksum(data []byte) uint8 {
	return Update(Init, data)
}

// Update continues a checksum over additional data. Checksum(ab) equals
// Update(Checksum(a), b).
func Update(crc uint8, data []byte) uint8 {
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
