package timer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSince32_Wrap(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(15), Since32(5, math.MaxUint32-9))
	assert.Equal(uint32(0), Since32(7, 7))
	assert.Equal(uint32(15000), Since32(20000, 5000))
}

func TestElapsedMicros(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint64(5000), ElapsedMicros(0, 5000, TICK_HZ))
	assert.Equal(uint64(15000), ElapsedMicros(5000, 20000, 0))

	// 12 MHz counter: 12 ticks per microsecond.
	assert.Equal(uint64(1000), ElapsedMicros(0, 12000, 12_000_000))

	// 32768 Hz counter: one second of ticks.
	assert.Equal(uint64(1_000_000), ElapsedMicros(100, 100+32768, 32768))
}

func TestElapsedMicros_Wrap(t *testing.T) {
	assert := assert.New(t)

	for _, tc := range []struct {
		a, b uint64
		us   uint64
	}{
		{math.MaxUint64 - 9, 5, 15},
		{math.MaxUint64, 0, 1},
		{math.MaxUint64 - 14999, 0, 15000},
	} {
		us := ElapsedMicros(tc.a, tc.b, TICK_HZ)
		assert.Equal(tc.us, us, "%x -> %x", tc.a, tc.b)
		assert.Less(us, uint64(1)<<32)
	}

	// Wrapped pairs at a slow rate stay small.
	assert.Equal(uint64(2), ElapsedMicros(math.MaxUint64-1, 2, 2_000_000))
}

func TestElapsedMicros_Saturate(t *testing.T) {
	assert := assert.New(t)

	// A full counter span at a rate below one tick per microsecond
	// cannot be expressed in 64 bits of microseconds.
	assert.Equal(uint64(math.MaxUint64), ElapsedMicros(0, math.MaxUint64, 1000))
}

func TestStepper(t *testing.T) {
	assert := assert.New(t)

	st := NewStepper(math.MaxUint32-1, 2)
	assert.Equal(uint32(math.MaxUint32-1), st.NowLow())
	assert.Equal(uint32(0), st.NowLow())
	assert.Equal(uint64(math.MaxUint32+3), st.Now())
	assert.Equal(3, st.Reads)
}

func TestScript(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{Readings: []uint64{0, 5000, 20000}}
	assert.Equal(3, sc.Remaining())
	assert.Equal(uint64(0), sc.Now())
	assert.Equal(uint64(5000), sc.Now())
	assert.Equal(uint32(20000), sc.NowLow())
	assert.Equal(0, sc.Remaining())
	assert.Equal(uint64(20000), sc.Now())

	empty := &Script{}
	assert.Equal(uint64(0), empty.Now())
	assert.Equal(0, empty.Remaining())
}

func TestHost(t *testing.T) {
	assert := assert.New(t)

	host := NewHost(0)
	a := host.Now()
	b := host.Now()
	assert.GreaterOrEqual(b, a)

	fast := NewHost(1_000_000_000)
	c := fast.Now()
	d := fast.Now()
	assert.GreaterOrEqual(d, c)
}
