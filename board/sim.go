package board

import (
	"log"
	"math"

	"github.com/ezrec/picoshell/entropy"
	"github.com/ezrec/picoshell/timer"
)

const (
	SIM_STEP = 7 // Default ticks per simulated counter read.
)

// Sim is a deterministic board: a stepping counter and a xorshift ring
// oscillator.
type Sim struct {
	Clocks
	Verbose bool

	Start uint64 // Initial counter value.
	Step  uint64 // Ticks per read, SIM_STEP if zero.
	Noise uint32 // Xorshift state.

	handover
}

var _ Board = (*Sim)(nil)

// NearWrap returns a starting value just below a wrap of the low word,
// so the first pacing phase crosses it.
func NearWrap() uint64 {
	return math.MaxUint32 - 10
}

func (sim *Sim) Init() (pp *Peripherals, err error) {
	clocks, err := sim.Clocks.Resolve()
	if err != nil {
		return
	}

	err = sim.claim()
	if err != nil {
		return
	}

	step := sim.Step
	if step == 0 {
		step = SIM_STEP
	}

	if sim.Verbose {
		log.Printf("board: sim counter @%d step %d, tick %d Hz", sim.Start, step, clocks.TickHz)
	}

	pp = &Peripherals{
		Counter: timer.NewStepper(sim.Start, step),
		Noise:   &entropy.Rosc{Bits: &entropy.Xorshift{State: sim.Noise}},
		Hz:      clocks.TickHz,
	}

	return
}
