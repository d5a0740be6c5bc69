// Package random implements the linear congruential generator used by the
// game. The sequence is fully determined by the seed so that a game can be
// replayed exactly.
//
// The recurrence is the BCPL generator. Each result has its two 16-bit halves
// swapped and summed, moving the poorly distributed low bits into the middle
// of the word, and is then XORed with a constant to decorrelate it from the
// seed.
package random

const (
	multiplier = 2147001325
	increment  = 715136305
	whitening  = 0x31415926
)

// LCG is a linear congruential generator. The zero value is a generator seeded
// with zero.
type LCG struct {
	acc uint32
}

// NewLCG is the preferred method of initialisation for the LCG type
func NewLCG(seed uint32) *LCG {
	return &LCG{acc: seed}
}

// Seed replaces the accumulator and returns the previous value
func (r *LCG) Seed(seed uint32) uint32 {
	prev := r.acc
	r.acc = seed
	return prev
}

// Next advances the accumulator and returns the next value in the sequence
func (r *LCG) Next() uint32 {
	r.acc = r.acc*multiplier + increment
	return whitening ^ ((r.acc >> 16) + (r.acc << 16))
}

// CoinFlip returns true or false with equal probability
func (r *LCG) CoinFlip() bool {
	return r.Next()&1 == 1
}

// Sign returns +1 or -1 with equal probability
func (r *LCG) Sign() int16 {
	if r.CoinFlip() {
		return 1
	}
	return -1
}
