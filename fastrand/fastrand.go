// Package fastrand implements a small, deterministic, non-cryptographic
// pseudo-random generator for jitter and backoff.
//
// The generator is a 32-bit xorshift (Marsaglia 13/17/5): three shift-xor
// rounds per draw, one word of state. Outputs are a pure function of the
// seed and the number of draws, so a reseeded generator replays the same
// sequence bit for bit. It is in no way suitable for anything
// security-sensitive.
//
// Generator methods do not lock. On targets where an interrupt path also
// draws from the same generator, call sites wrap the draw in an irq guard;
// most call sites can prove no such reentry and skip it.
package fastrand

// defaultSeed replaces a zero seed. An all-zero xorshift state is a fixed
// point and would emit zeros forever.
const defaultSeed = 0x9E3779B9

// Generator holds one word of xorshift32 state. The zero value is ready to
// use and starts from the default seed.
type Generator struct {
	state uint32
}

// New returns a generator seeded with seed. A zero seed is replaced with the
// default.
func New(seed uint32) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// Seed resets the generator state. Zero is remapped to a fixed non-zero
// constant so the state can never become degenerate.
func (g *Generator) Seed(seed uint32) {
	if seed == 0 {
		seed = defaultSeed
	}
	g.state = seed
}

// Next32 advances the state one step and returns the new 32-bit word.
func (g *Generator) Next32() uint32 {
	s := g.state
	if s == 0 {
		s = defaultSeed
	}
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	g.state = s
	return s
}

// Next16 returns the high 16 bits of one Next32 draw. Exactly one state
// advance, same as Next32, so draw accounting stays uniform.
func (g *Generator) Next16() uint16 {
	return uint16(g.Next32() >> 16)
}

// Next8 returns the high 8 bits of one Next32 draw.
func (g *Generator) Next8() uint8 {
	return uint8(g.Next32() >> 24)
}

// std is the process-default generator behind the package-level functions.
var std Generator

// Seed resets the default generator.
func Seed(seed uint32) { std.Seed(seed) }

// Next32 draws from the default generator.
func Next32() uint32 { return std.Next32() }

// Next16 draws from the default generator.
func Next16() uint16 { return std.Next16() }

// Next8 draws from the default generator.
func Next8() uint8 { return std.Next8() }
