// Package arena provides the fixed memory region backing all dynamic
// allocation, and the first-fit heap that owns it.
package arena

const (
	ARENA_SIZE  = 1024 // Size of the reserved region in bytes.
	ARENA_ALIGN = 8    // Alignment of every allocation.
)

// Arena is the fixed-size byte region reserved at startup.
// Once claimed by a Heap nothing else may touch its bytes.
type Arena struct {
	mem     [ARENA_SIZE]byte
	claimed bool
}

// NewArena reserves a new region.
func NewArena() *Arena {
	return &Arena{}
}

// Size returns the size of the region in bytes.
func (ar *Arena) Size() int {
	return len(ar.mem)
}

// Claimed reports whether a heap owns the region.
func (ar *Arena) Claimed() bool {
	return ar.claimed
}

func (ar *Arena) claim() (mem []byte, err error) {
	if ar == nil {
		err = ErrArenaMissing
		return
	}

	if ar.claimed {
		err = ErrArenaClaimed
		return
	}

	ar.claimed = true
	mem = ar.mem[:]
	return
}
