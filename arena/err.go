package arena

import (
	"errors"

	"github.com/ezrec/picoshell/translate"
)

var f = translate.From

var (
	// Arena errors
	ErrArenaClaimed = errors.New(f("arena already claimed"))
	ErrArenaMissing = errors.New(f("arena missing"))

	// Heap errors
	ErrHeapInitialized   = errors.New(f("heap already initialized"))
	ErrHeapUninitialized = errors.New(f("heap not initialized"))
	ErrOutOfMemory       = errors.New(f("out of memory"))
	ErrAllocSize         = errors.New(f("invalid allocation size"))
	ErrForeignBlock      = errors.New(f("block not owned by heap"))
)

// ErrAlloc reports the request that could not be satisfied.
type ErrAlloc struct {
	Size int
	Err  error
}

func (err *ErrAlloc) Error() string {
	return f("alloc %d bytes: %v", err.Size, err.Err)
}

func (err *ErrAlloc) Unwrap() error {
	return err.Err
}
