package engine

import (
	"encoding/binary"
	"errors"
	"log"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/ezrec/picoshell/arena"
	"github.com/ezrec/picoshell/translate"
)

var f = translate.From

const (
	STATS_WINDOW        = 32        // Reservoir size in samples.
	STATS_REPORT_MICROS = 1_000_000 // Default report interval.
)

var ErrNoAllocator = errors.New(f("allocator missing"))

// Summary is one report of loop timing.
type Summary struct {
	Iterations uint64  // Updates since the previous report.
	Micros     uint64  // Elapsed time covered by those updates.
	Min        uint32  // Shortest update.
	Max        uint32  // Longest update.
	P50        uint32  // Median of the sampled updates.
	P99        uint32  // 99th percentile of the sampled updates.
	Load       float64 // Process CPU percentage, if a LoadFunc is set.
}

// Rate returns the iterations per second covered by the summary.
func (sum Summary) Rate() float64 {
	if sum.Micros == 0 {
		return 0
	}
	return float64(sum.Iterations) * 1e6 / float64(sum.Micros)
}

// Stats is a stand-in machine for hosted runs. It measures the cadence it
// is driven at, keeping a reservoir sample of update durations in an
// arena-backed window.
type Stats struct {
	Verbose      bool
	ReportMicros uint64                  // Report interval, STATS_REPORT_MICROS if zero.
	Report       func(sum Summary)       // Called once per interval.
	Load         func() (float64, error) // Optional CPU load probe.

	rng     *rand.Rand
	window  []byte // STATS_WINDOW little-endian uint32 samples.
	sampled int
	current Summary
}

var _ Machine = (*Stats)(nil)

// NewStats builds a Stats machine. The seed drives the reservoir sampling.
func NewStats(seed uint32, alloc arena.Allocator) (st *Stats, err error) {
	if alloc == nil {
		err = ErrNoAllocator
		return
	}

	window, err := alloc.Alloc(STATS_WINDOW * 4)
	if err != nil {
		return
	}

	st = &Stats{
		rng:    rand.New(rand.NewPCG(uint64(seed), uint64(seed)<<32|uint64(seed))),
		window: window,
	}
	st.reset()

	return
}

// StatsFactory adapts NewStats to a Factory, applying configure to the
// machine before it is returned.
func StatsFactory(configure func(st *Stats)) Factory {
	return func(seed uint32, alloc arena.Allocator) (mc Machine, err error) {
		st, err := NewStats(seed, alloc)
		if err != nil {
			return
		}

		if configure != nil {
			configure(st)
		}

		mc = st
		return
	}
}

func (st *Stats) reset() {
	st.sampled = 0
	st.current = Summary{Min: math.MaxUint32}
}

func (st *Stats) sample(index int) uint32 {
	return binary.LittleEndian.Uint32(st.window[index*4:])
}

func (st *Stats) store(index int, value uint32) {
	binary.LittleEndian.PutUint32(st.window[index*4:], value)
}

// Update records one loop iteration.
func (st *Stats) Update(elapsedMicros uint32) {
	cur := &st.current
	cur.Iterations++
	cur.Micros += uint64(elapsedMicros)
	cur.Min = min(cur.Min, elapsedMicros)
	cur.Max = max(cur.Max, elapsedMicros)

	// Algorithm R reservoir sampling.
	if st.sampled < STATS_WINDOW {
		st.store(st.sampled, elapsedMicros)
		st.sampled++
	} else if slot := st.rng.Uint64N(cur.Iterations); slot < STATS_WINDOW {
		st.store(int(slot), elapsedMicros)
	}

	interval := st.ReportMicros
	if interval == 0 {
		interval = STATS_REPORT_MICROS
	}

	if cur.Micros >= interval {
		st.flush()
	}
}

// Pending returns the summary of updates not yet reported.
func (st *Stats) Pending() (sum Summary) {
	sum = st.current
	if sum.Iterations == 0 {
		sum.Min = 0
	}

	samples := make([]uint32, st.sampled)
	for n := range samples {
		samples[n] = st.sample(n)
	}
	slices.Sort(samples)

	if len(samples) > 0 {
		sum.P50 = samples[len(samples)/2]
		sum.P99 = samples[(len(samples)*99)/100]
	}

	return
}

func (st *Stats) flush() {
	sum := st.Pending()

	if st.Load != nil {
		load, err := st.Load()
		if err != nil {
			if st.Verbose {
				log.Printf("stats: load: %v", err)
			}
		} else {
			sum.Load = load
		}
	}

	if st.Report != nil {
		st.Report(sum)
	} else if st.Verbose {
		log.Printf("stats: %v", sum)
	}

	st.reset()
}

func (sum Summary) String() string {
	return f("%d iterations in %d us (%.1f/s) min %d us max %d us p50 %d us p99 %d us cpu %.1f%%",
		sum.Iterations, sum.Micros, sum.Rate(), sum.Min, sum.Max, sum.P50, sum.P99, sum.Load)
}
