package shell

import (
	"errors"

	"github.com/ezrec/picoshell/translate"
)

var f = translate.From

var (
	ErrBooted    = errors.New(f("already booted"))
	ErrNoBoard   = errors.New(f("board missing"))
	ErrNoFactory = errors.New(f("engine factory missing"))
	ErrNoMachine = errors.New(f("engine returned no machine"))
)

// Startup stages, in order.
const (
	STAGE_ARENA  = "arena"
	STAGE_BOARD  = "board"
	STAGE_SEED   = "seed"
	STAGE_ENGINE = "engine"
)

// ErrStage indicates the startup stage that failed.
type ErrStage struct {
	Stage string
	Err   error
}

func (err *ErrStage) Error() string {
	return f("%v: %v", err.Stage, err.Err)
}

func (err *ErrStage) Unwrap() error {
	return err.Err
}
