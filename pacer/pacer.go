package pacer

import (
	"log"
	"math"

	"github.com/ezrec/picoshell/engine"
	"github.com/ezrec/picoshell/timer"
)

const (
	PACE_TICKS = 15000 // Minimum ticks between iterations.
)

// Loop drives a machine at a bounded rate.
type Loop struct {
	Verbose bool

	Counter timer.Counter  // Free-running counter.
	Machine engine.Machine // Machine advanced once per iteration.
	Hz      uint64         // Counter rate.
	Budget  uint32         // Pacing budget in ticks, PACE_TICKS if zero.

	// Probe, if set, is called after every pacing poll that does not end
	// the busy-wait, with the remaining budget.
	Probe func(remaining uint32)

	Iterations uint64 // Completed iterations.

	previous uint64
}

// NewLoop creates a loop, taking the first baseline reading now.
func NewLoop(counter timer.Counter, machine engine.Machine, hz uint64) (lp *Loop) {
	lp = &Loop{
		Counter: counter,
		Machine: machine,
		Hz:      hz,
	}

	lp.previous = counter.Now()

	return
}

// Previous returns the current baseline reading.
func (lp *Loop) Previous() uint64 {
	return lp.previous
}

// Measure advances the machine by the time since the previous baseline.
func (lp *Loop) Measure() (elapsed uint32) {
	current := lp.Counter.Now()

	micros := timer.ElapsedMicros(lp.previous, current, lp.Hz)
	if micros > math.MaxUint32 {
		elapsed = math.MaxUint32
	} else {
		elapsed = uint32(micros)
	}

	lp.Machine.Update(elapsed)
	lp.previous = current

	return
}

// Pace busy-waits until at least the budget has elapsed on the low-word
// counter, returning the ticks observed.
func (lp *Loop) Pace() (spent uint32) {
	delay := lp.Budget
	if delay == 0 {
		delay = PACE_TICKS
	}

	delay_start := lp.Counter.NowLow()
	for {
		now := lp.Counter.NowLow()
		waited := timer.Since32(now, delay_start)
		spent += waited
		if waited >= delay {
			break
		}

		delay_start = now
		delay -= waited

		if lp.Probe != nil {
			lp.Probe(delay)
		}
	}

	return
}

// Iterate runs one measure phase followed by one pacing phase.
func (lp *Loop) Iterate() {
	elapsed := lp.Measure()
	spent := lp.Pace()

	lp.Iterations++

	if lp.Verbose {
		log.Printf("pacer: #%d elapsed %d us, paced %d ticks", lp.Iterations, elapsed, spent)
	}
}

// Run iterates forever.
func (lp *Loop) Run() {
	for {
		lp.Iterate()
	}
}
