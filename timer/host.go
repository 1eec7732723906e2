package timer

import (
	"time"
)

// Host reads the host monotonic clock scaled to a counter rate.
type Host struct {
	Hz uint64 // Counter rate, TICK_HZ if zero.

	epoch time.Time
}

var _ Counter = (*Host)(nil)

// NewHost creates a host counter zeroed at the current instant.
func NewHost(hz uint64) (host *Host) {
	host = &Host{
		Hz:    hz,
		epoch: time.Now(),
	}

	return
}

func (host *Host) rate() uint64 {
	if host.Hz == 0 {
		return TICK_HZ
	}
	return host.Hz
}

// Now returns the ticks since the host counter was created.
func (host *Host) Now() uint64 {
	ns := uint64(time.Since(host.epoch).Nanoseconds())
	hz := host.rate()
	if hz == uint64(time.Second) {
		return ns
	}

	return (ns/uint64(time.Second))*hz + (ns%uint64(time.Second))*hz/uint64(time.Second)
}

// NowLow returns the low word of Now.
func (host *Host) NowLow() uint32 {
	return uint32(host.Now())
}
