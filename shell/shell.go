// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package shell runs the one-shot startup sequence and hands control to
// the paced execution loop.
package shell

import (
	"log"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/ezrec/picoshell/arena"
	"github.com/ezrec/picoshell/board"
	"github.com/ezrec/picoshell/engine"
	"github.com/ezrec/picoshell/entropy"
	"github.com/ezrec/picoshell/pacer"
)

// Shell owns everything created during startup.
type Shell struct {
	Verbose bool // If set, logs each startup stage and loop iteration.

	ID      string         // Boot identifier, generated if empty.
	Arena   *arena.Arena   // Reserved region, allocated if nil.
	Heap    *arena.Heap    // Allocator owning the arena, allocated if nil.
	Board   board.Board    // Hardware bring-up.
	Factory engine.Factory // Builds the machine from the seed.
	Budget  uint32         // Pacing budget, pacer.PACE_TICKS if zero.

	// Halt stops the system after a failed startup. The default never
	// returns.
	Halt func(err error)

	Seed    uint32         // Seed drawn during startup.
	Machine engine.Machine // Machine built during startup.

	booted bool
}

// NewShell creates a shell for a board and a machine factory.
func NewShell(bd board.Board, factory engine.Factory) (sh *Shell) {
	sh = &Shell{
		ID:      xid.New().String(),
		Board:   bd,
		Factory: factory,
	}

	return
}

func (sh *Shell) logf(format string, args ...any) {
	if sh.Verbose {
		log.Printf("shell %v: "+format, append([]any{sh.ID}, args...)...)
	}
}

// Boot runs the startup sequence: arena bootstrap, board bring-up, one
// seed draw, machine construction. It succeeds or fails exactly once;
// later calls return ErrBooted without touching anything.
func (sh *Shell) Boot() (lp *pacer.Loop, err error) {
	if sh.booted {
		err = ErrBooted
		return
	}
	sh.booted = true

	if sh.ID == "" {
		sh.ID = xid.New().String()
	}

	stage := STAGE_ARENA
	defer func() {
		if err != nil {
			err = &ErrStage{Stage: stage, Err: err}
		}
	}()

	if sh.Arena == nil {
		sh.Arena = arena.NewArena()
	}
	if sh.Heap == nil {
		sh.Heap = &arena.Heap{}
	}
	sh.Heap.Verbose = sh.Verbose

	err = sh.Heap.Init(sh.Arena)
	if err != nil {
		return
	}
	sh.logf("arena %d bytes", sh.Heap.Size())

	stage = STAGE_BOARD
	if sh.Board == nil {
		err = ErrNoBoard
		return
	}

	pp, err := sh.Board.Init()
	if err != nil {
		return
	}
	sh.logf("board up, counter %d Hz", pp.Hz)

	stage = STAGE_SEED
	once := &entropy.Once{Source: pp.Noise}
	sh.Seed, err = once.Seed()
	if err != nil {
		return
	}
	sh.logf("seed 0x%08x", sh.Seed)

	stage = STAGE_ENGINE
	if sh.Factory == nil {
		err = ErrNoFactory
		return
	}

	sh.Machine, err = sh.Factory(sh.Seed, sh.Heap)
	if err != nil {
		return
	}
	if sh.Machine == nil {
		err = ErrNoMachine
		return
	}
	sh.logf("machine up, heap %d/%d bytes", sh.Heap.Used(), sh.Heap.Size())

	lp = pacer.NewLoop(pp.Counter, sh.Machine, pp.Hz)
	lp.Budget = sh.Budget
	lp.Verbose = sh.Verbose

	return
}

func (sh *Shell) halt(err error) {
	if sh.Halt != nil {
		sh.Halt(err)
		return
	}

	atexit.Fatalf("picoshell: %v: halt: %v", sh.ID, err)
}

// Start boots the shell and runs the loop forever. On a failed boot the
// system halts; Start returns only if Halt does.
func (sh *Shell) Start() {
	lp, err := sh.Boot()
	if err != nil {
		sh.halt(err)
		return
	}

	lp.Run()
}
