// Package engine defines the contract between the shell and the external
// computation it drives.
package engine

import (
	"github.com/ezrec/picoshell/arena"
)

// Machine is the external computation. It advances its internal state by
// the elapsed time since the previous call.
type Machine interface {
	Update(elapsedMicros uint32)
}

// Factory constructs the machine from the entropy seed. Every dynamic
// allocation the machine makes must come from alloc.
type Factory func(seed uint32, alloc arena.Allocator) (Machine, error)
