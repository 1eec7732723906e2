// Package board brings the hardware up and hands out the peripherals the
// shell depends on: a free-running counter and a noise source.
package board

import (
	"errors"

	"github.com/ezrec/picoshell/entropy"
	"github.com/ezrec/picoshell/timer"
	"github.com/ezrec/picoshell/translate"
)

var f = translate.From

const (
	XTAL_FREQ_HZ = 12_000_000 // Crystal frequency of the reference board.
)

var (
	ErrPeripheralsTaken = errors.New(f("peripherals already taken"))
	ErrClockConfig      = errors.New(f("clock configuration failed"))
)

// ErrClock reports the rejected clock settings.
type ErrClock struct {
	XtalHz uint64
	TickHz uint64
}

func (err *ErrClock) Error() string {
	return f("xtal %d Hz, tick %d Hz: %v", err.XtalHz, err.TickHz, ErrClockConfig)
}

func (err *ErrClock) Unwrap() error {
	return ErrClockConfig
}

// Peripherals are the devices handed over by a successful Init.
type Peripherals struct {
	Counter timer.Counter  // Free-running counter.
	Noise   entropy.Source // Noise source.
	Hz      uint64         // Counter rate.
}

// Board is the hardware bring-up collaborator.
type Board interface {
	// Init configures the clocks and hands over the peripherals.
	// It succeeds at most once.
	Init() (*Peripherals, error)
}

// Clocks is the clock tree configuration shared by the boards.
type Clocks struct {
	XtalHz uint64 // Crystal frequency, XTAL_FREQ_HZ if zero.
	TickHz uint64 // Counter rate, timer.TICK_HZ if zero.
}

// Resolve fills defaults and validates the configuration.
func (ck Clocks) Resolve() (out Clocks, err error) {
	out = ck
	if out.XtalHz == 0 {
		out.XtalHz = XTAL_FREQ_HZ
	}
	if out.TickHz == 0 {
		out.TickHz = timer.TICK_HZ
	}

	if out.TickHz > out.XtalHz {
		err = &ErrClock{XtalHz: out.XtalHz, TickHz: out.TickHz}
	}

	return
}

// handover marks a one-shot transfer of the peripherals.
type handover struct {
	taken bool
}

func (ho *handover) claim() (err error) {
	if ho.taken {
		err = ErrPeripheralsTaken
		return
	}

	ho.taken = true
	return
}
