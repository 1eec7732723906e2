package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ezrec/picoshell/config"
	"github.com/ezrec/picoshell/engine"
	"github.com/ezrec/picoshell/shell"
)

type runOptions struct {
	config  string
	dotenv  []string
	board   string
	verbose bool
}

func newRootCommand() (root *cobra.Command) {
	root = &cobra.Command{
		Use:           "picoshell",
		Short:         "Paced execution shell for an embedded interpreter",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newRunCommand(), newImageCommand())

	return
}

func newRunCommand() *cobra.Command {
	return (&runOptions{}).command()
}

func (opts *runOptions) command() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "run",
		Short: "Boot the board and run the paced loop forever",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := opts.load(cmd)
			if err != nil {
				return
			}

			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "YAML configuration file")
	flags.StringSliceVar(&opts.dotenv, "env-file", []string{".env"}, "dotenv files applied before the environment")
	flags.StringVarP(&opts.board, "board", "b", "", "board to run on (host, sim)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")

	return
}

func (opts *runOptions) load(cmd *cobra.Command) (cfg *config.Config, err error) {
	cfg = config.Default()

	if len(opts.config) != 0 {
		err = cfg.LoadFile(opts.config)
		if err != nil {
			return
		}
	}

	err = config.LoadDotEnv(opts.dotenv...)
	if err != nil {
		return
	}

	err = cfg.ApplyEnv(nil)
	if err != nil {
		return
	}

	if cmd.Flags().Changed("board") {
		cfg.Board = opts.board
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	err = cfg.Validate()
	return
}

func run(cfg *config.Config) (err error) {
	bd, err := cfg.NewBoard()
	if err != nil {
		return
	}

	load, err := engine.ProcessLoad()
	if err != nil {
		log.Printf("process load unavailable: %v", err)
		err = nil
	}

	factory := engine.StatsFactory(func(st *engine.Stats) {
		st.Verbose = cfg.Verbose
		st.ReportMicros = cfg.ReportMicros
		st.Load = load
		st.Report = func(sum engine.Summary) {
			log.Printf("%v", sum)
		}
	})

	sh := shell.NewShell(bd, factory)
	sh.Verbose = cfg.Verbose
	sh.Budget = cfg.PaceTicks

	log.Printf("boot %v on %v board", sh.ID, cfg.Board)

	// Never returns: the shell either loops forever or halts the process.
	sh.Start()

	return
}
