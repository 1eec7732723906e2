package arena

import (
	"log"
	"slices"
	"unsafe"
)

// Allocator hands out byte blocks from the arena.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte) error
}

// span is a contiguous run of the arena.
type span struct {
	offset int
	size   int
}

// Heap is a first-fit free list allocator over a claimed Arena.
type Heap struct {
	Verbose bool // If set, logs every allocation.

	mem   []byte
	free  []span      // Free spans, ordered by offset.
	inuse map[int]int // Offset to size of live blocks.
	used  int
	peak  int
}

var _ Allocator = (*Heap)(nil)

// Init claims the arena. It must be called once, before any allocation.
func (hp *Heap) Init(ar *Arena) (err error) {
	if hp.mem != nil {
		err = ErrHeapInitialized
		return
	}

	mem, err := ar.claim()
	if err != nil {
		return
	}

	hp.mem = mem
	hp.free = []span{{offset: 0, size: len(mem)}}
	hp.inuse = make(map[int]int)

	return
}

// Size returns the total capacity of the heap.
func (hp *Heap) Size() int {
	return len(hp.mem)
}

// Used returns the bytes currently allocated, including alignment padding.
func (hp *Heap) Used() int {
	return hp.used
}

// Available returns the bytes not allocated.
func (hp *Heap) Available() int {
	return len(hp.mem) - hp.used
}

// Peak returns the high water mark of Used.
func (hp *Heap) Peak() int {
	return hp.peak
}

func align(size int) int {
	return (size + ARENA_ALIGN - 1) &^ (ARENA_ALIGN - 1)
}

// Alloc returns a zeroed block of size bytes.
func (hp *Heap) Alloc(size int) (buf []byte, err error) {
	defer func() {
		if err != nil {
			err = &ErrAlloc{Size: size, Err: err}
		}
	}()

	if hp.mem == nil {
		err = ErrHeapUninitialized
		return
	}

	if size <= 0 {
		err = ErrAllocSize
		return
	}

	need := align(size)
	index := slices.IndexFunc(hp.free, func(sp span) bool { return sp.size >= need })
	if index < 0 {
		err = ErrOutOfMemory
		return
	}

	sp := &hp.free[index]
	offset := sp.offset
	if sp.size == need {
		hp.free = slices.Delete(hp.free, index, index+1)
	} else {
		sp.offset += need
		sp.size -= need
	}

	hp.inuse[offset] = need
	hp.used += need
	hp.peak = max(hp.peak, hp.used)

	buf = hp.mem[offset : offset+size : offset+size]
	clear(buf)

	if hp.Verbose {
		log.Printf("heap: alloc %d @%d (used %d/%d)", size, offset, hp.used, len(hp.mem))
	}

	return
}

// offsetOf locates buf within the arena.
func (hp *Heap) offsetOf(buf []byte) (offset int, ok bool) {
	if len(hp.mem) == 0 || cap(buf) == 0 {
		return
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(hp.mem)))
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if ptr < base || ptr >= base+uintptr(len(hp.mem)) {
		return
	}

	offset = int(ptr - base)
	_, ok = hp.inuse[offset]
	return
}

// Free returns a block obtained from Alloc to the heap.
func (hp *Heap) Free(buf []byte) (err error) {
	if hp.mem == nil {
		err = ErrHeapUninitialized
		return
	}

	offset, ok := hp.offsetOf(buf)
	if !ok {
		err = ErrForeignBlock
		return
	}

	size := hp.inuse[offset]
	delete(hp.inuse, offset)
	hp.used -= size

	index, _ := slices.BinarySearchFunc(hp.free, offset, func(sp span, offset int) int {
		return sp.offset - offset
	})
	hp.free = slices.Insert(hp.free, index, span{offset: offset, size: size})

	// Coalesce with the following, then the preceding span.
	if index+1 < len(hp.free) && hp.free[index].offset+hp.free[index].size == hp.free[index+1].offset {
		hp.free[index].size += hp.free[index+1].size
		hp.free = slices.Delete(hp.free, index+1, index+2)
	}
	if index > 0 && hp.free[index-1].offset+hp.free[index-1].size == hp.free[index].offset {
		hp.free[index-1].size += hp.free[index].size
		hp.free = slices.Delete(hp.free, index, index+1)
	}

	if hp.Verbose {
		log.Printf("heap: free @%d (used %d/%d)", offset, hp.used, len(hp.mem))
	}

	return
}

// Fragments returns the number of free spans.
func (hp *Heap) Fragments() int {
	return len(hp.free)
}
