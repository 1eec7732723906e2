// Package entropy draws the single seed that is the only source of
// non-determinism for a run.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"errors"

	"github.com/ezrec/picoshell/translate"
)

var f = translate.From

var (
	ErrSeedConsumed = errors.New(f("seed already consumed"))
	ErrNoSource     = errors.New(f("noise source unavailable"))
)

// Source is a hardware noise generator.
type Source interface {
	// NextU32 produces the next 32-bit value.
	NextU32() uint32
}

// Once samples its source a single time.
type Once struct {
	Source Source

	drawn bool
}

// Seed returns one value from the source. Every later call fails without
// touching the source.
func (once *Once) Seed() (seed uint32, err error) {
	if once.drawn {
		err = ErrSeedConsumed
		return
	}

	if once.Source == nil {
		err = ErrNoSource
		return
	}

	once.drawn = true
	seed = once.Source.NextU32()
	return
}

// Drawn reports whether the seed has been taken.
func (once *Once) Drawn() bool {
	return once.drawn
}

// BitSource yields one random bit per sample.
type BitSource interface {
	RandomBit() bool
}

// Rosc assembles 32-bit values from a ring oscillator style bit source,
// least significant bit first.
type Rosc struct {
	Bits BitSource
}

var _ Source = (*Rosc)(nil)

func (rosc *Rosc) NextU32() (value uint32) {
	for bitpos := range 32 {
		if rosc.Bits.RandomBit() {
			value |= 1 << bitpos
		}
	}
	return
}

// Xorshift is a deterministic bit source for simulated boards.
type Xorshift struct {
	State uint32
}

var _ BitSource = (*Xorshift)(nil)

func (xs *Xorshift) RandomBit() bool {
	if xs.State == 0 {
		xs.State = 0x2545f491
	}

	xs.State ^= xs.State << 13
	xs.State ^= xs.State >> 17
	xs.State ^= xs.State << 5

	return (xs.State & 1) != 0
}

// Host draws from the operating system CSPRNG.
type Host struct{}

var _ Source = Host{}

func (Host) NextU32() uint32 {
	var buf [4]byte
	// crypto/rand.Read never returns an error and crashes the process
	// if the operating system cannot supply entropy.
	_, _ = rand.Read(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}
