// Package config loads the shell settings from YAML with environment
// overrides.
package config

import (
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/picoshell/board"
	"github.com/ezrec/picoshell/engine"
	"github.com/ezrec/picoshell/pacer"
	"github.com/ezrec/picoshell/timer"
	"github.com/ezrec/picoshell/translate"
)

var f = translate.From

const (
	BOARD_HOST = "host"
	BOARD_SIM  = "sim"

	ENV_PREFIX = "PICOSHELL_"
)

var (
	ErrBoardUnknown = errors.New(f("unknown board"))
	ErrPaceTicks    = errors.New(f("pace ticks must be positive"))
)

// ErrEnv reports an unparsable environment override.
type ErrEnv struct {
	Name  string
	Value string
	Err   error
}

func (err *ErrEnv) Error() string {
	return f("%v=%q: %v", err.Name, err.Value, err.Err)
}

func (err *ErrEnv) Unwrap() error {
	return err.Err
}

// Config holds the settings of one run.
type Config struct {
	Verbose      bool   `yaml:"verbose"`
	Board        string `yaml:"board"`         // BOARD_HOST or BOARD_SIM.
	XtalHz       uint64 `yaml:"xtal_hz"`       // Crystal frequency.
	TickHz       uint64 `yaml:"tick_hz"`       // Counter rate.
	PaceTicks    uint32 `yaml:"pace_ticks"`    // Pacing budget in counter ticks.
	ReportMicros uint64 `yaml:"report_micros"` // Stats report interval.

	Sim struct {
		Start uint64 `yaml:"start"` // Initial counter value.
		Step  uint64 `yaml:"step"`  // Ticks per counter read.
		Noise uint32 `yaml:"noise"` // Xorshift state.
	} `yaml:"sim"`
}

// Default returns the settings of the reference board.
func Default() (cfg *Config) {
	cfg = &Config{
		Board:        BOARD_HOST,
		XtalHz:       board.XTAL_FREQ_HZ,
		TickHz:       timer.TICK_HZ,
		PaceTicks:    pacer.PACE_TICKS,
		ReportMicros: engine.STATS_REPORT_MICROS,
	}
	cfg.Sim.Start = board.NearWrap()
	cfg.Sim.Step = board.SIM_STEP

	return
}

// Decode reads YAML over the current settings.
func (cfg *Config) Decode(rd io.Reader) (err error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		err = nil
	}

	return
}

// LoadFile reads a YAML file over the current settings.
func (cfg *Config) LoadFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return cfg.Decode(inf)
}

// LoadDotEnv populates the environment from dotenv files, without
// replacing variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) (err error) {
	for _, path := range paths {
		_, serr := os.Stat(path)
		if serr != nil {
			continue
		}

		err = godotenv.Load(path)
		if err != nil {
			return
		}
	}

	return
}

// ApplyEnv applies PICOSHELL_* environment overrides.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) (err error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	uints := []struct {
		name string
		bits int
		set  func(v uint64)
	}{
		{"XTAL_HZ", 64, func(v uint64) { cfg.XtalHz = v }},
		{"TICK_HZ", 64, func(v uint64) { cfg.TickHz = v }},
		{"PACE_TICKS", 32, func(v uint64) { cfg.PaceTicks = uint32(v) }},
		{"REPORT_MICROS", 64, func(v uint64) { cfg.ReportMicros = v }},
		{"SIM_START", 64, func(v uint64) { cfg.Sim.Start = v }},
		{"SIM_STEP", 64, func(v uint64) { cfg.Sim.Step = v }},
		{"SIM_NOISE", 32, func(v uint64) { cfg.Sim.Noise = uint32(v) }},
	}

	for _, u := range uints {
		name := ENV_PREFIX + u.name
		value, ok := lookup(name)
		if !ok {
			continue
		}

		var v uint64
		v, err = strconv.ParseUint(value, 0, u.bits)
		if err != nil {
			err = &ErrEnv{Name: name, Value: value, Err: err}
			return
		}
		u.set(v)
	}

	if value, ok := lookup(ENV_PREFIX + "BOARD"); ok {
		cfg.Board = value
	}

	if value, ok := lookup(ENV_PREFIX + "VERBOSE"); ok {
		cfg.Verbose, err = strconv.ParseBool(value)
		if err != nil {
			err = &ErrEnv{Name: ENV_PREFIX + "VERBOSE", Value: value, Err: err}
			return
		}
	}

	return
}

// Validate checks the settings for consistency.
func (cfg *Config) Validate() (err error) {
	switch cfg.Board {
	case BOARD_HOST, BOARD_SIM:
	default:
		err = ErrBoardUnknown
		return
	}

	if cfg.PaceTicks == 0 {
		err = ErrPaceTicks
		return
	}

	_, err = cfg.Clocks().Resolve()
	return
}

// Clocks returns the clock tree settings.
func (cfg *Config) Clocks() board.Clocks {
	return board.Clocks{XtalHz: cfg.XtalHz, TickHz: cfg.TickHz}
}

// NewBoard builds the configured board.
func (cfg *Config) NewBoard() (bd board.Board, err error) {
	switch cfg.Board {
	case BOARD_HOST:
		bd = &board.Host{Clocks: cfg.Clocks(), Verbose: cfg.Verbose}
	case BOARD_SIM:
		bd = &board.Sim{
			Clocks:  cfg.Clocks(),
			Verbose: cfg.Verbose,
			Start:   cfg.Sim.Start,
			Step:    cfg.Sim.Step,
			Noise:   cfg.Sim.Noise,
		}
	default:
		err = ErrBoardUnknown
	}

	return
}
