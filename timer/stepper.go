package timer

// Stepper is a simulated counter advancing by Step ticks on every read.
type Stepper struct {
	Value uint64 // Current counter value.
	Step  uint64 // Ticks added after each read.
	Reads int    // Number of reads performed.
}

var _ Counter = (*Stepper)(nil)

// NewStepper creates a counter starting at start.
func NewStepper(start, step uint64) *Stepper {
	return &Stepper{Value: start, Step: step}
}

func (st *Stepper) read() (value uint64) {
	value = st.Value
	st.Value += st.Step
	st.Reads++
	return
}

// Now returns the counter and advances it.
func (st *Stepper) Now() uint64 {
	return st.read()
}

// NowLow returns the low word of the counter and advances it.
func (st *Stepper) NowLow() uint32 {
	return uint32(st.read())
}

// Script replays a fixed list of readings, holding the last one once the
// list is exhausted.
type Script struct {
	Readings []uint64
	index    int
}

var _ Counter = (*Script)(nil)

func (sc *Script) read() (value uint64) {
	if len(sc.Readings) == 0 {
		return
	}

	if sc.index < len(sc.Readings) {
		value = sc.Readings[sc.index]
		sc.index++
		return
	}

	return sc.Readings[len(sc.Readings)-1]
}

// Now returns the next scripted reading.
func (sc *Script) Now() uint64 {
	return sc.read()
}

// NowLow returns the low word of the next scripted reading.
func (sc *Script) NowLow() uint32 {
	return uint32(sc.read())
}

// Remaining returns the number of readings not yet replayed.
func (sc *Script) Remaining() int {
	return len(sc.Readings) - sc.index
}
