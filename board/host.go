package board

import (
	"log"

	"github.com/ezrec/picoshell/entropy"
	"github.com/ezrec/picoshell/timer"
)

// Host runs the shell on the host: the monotonic clock stands in for the
// hardware timer and the OS CSPRNG for the noise source.
type Host struct {
	Clocks
	Verbose bool

	handover
}

var _ Board = (*Host)(nil)

func (host *Host) Init() (pp *Peripherals, err error) {
	clocks, err := host.Clocks.Resolve()
	if err != nil {
		return
	}

	err = host.claim()
	if err != nil {
		return
	}

	if host.Verbose {
		log.Printf("board: host clocks xtal %d Hz, tick %d Hz", clocks.XtalHz, clocks.TickHz)
	}

	pp = &Peripherals{
		Counter: timer.NewHost(clocks.TickHz),
		Noise:   entropy.Host{},
		Hz:      clocks.TickHz,
	}

	return
}
