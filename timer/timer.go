package timer

import (
	"math"
	"math/bits"
)

const (
	TICK_HZ      = 1_000_000 // Default counter rate, one tick per microsecond.
	MICROS_PER_S = 1_000_000 // Microseconds in a second.
)

// Counter is a free-running monotonic counter.
type Counter interface {
	// Now returns the full-width counter value.
	Now() uint64
	// NowLow returns the low 32 bits of the same counter.
	NowLow() uint32
}

// Since32 returns the ticks elapsed from start to now on the low-word view.
func Since32(now, start uint32) uint32 {
	return now - start
}

// Since returns the ticks elapsed from a to b on the full-width view.
func Since(b, a uint64) uint64 {
	return b - a
}

// ElapsedMicros converts the ticks between two ordered readings a and b,
// taken at a counter rate of hz, into microseconds.
// A zero hz is taken to be TICK_HZ.
func ElapsedMicros(a, b uint64, hz uint64) (micros uint64) {
	if hz == 0 {
		hz = TICK_HZ
	}

	ticks := Since(b, a)
	if hz == MICROS_PER_S {
		return ticks
	}

	hi, lo := bits.Mul64(ticks, MICROS_PER_S)
	if hi >= hz {
		return math.MaxUint64
	}

	micros, _ = bits.Div64(hi, lo, hz)
	return
}
