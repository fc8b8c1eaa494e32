package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chess-puzzles-go/internal/config"
)

// app carries the global flag values and the configuration shared by
// every subcommand.
type app struct {
	configFile string
	logFile    string
	appendLog  bool
	verbose    int
	quiet      bool
	json       bool

	cfg     *config.Config
	closers []io.Closer
}

// execute runs the command line args and releases any files the run opened.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "chess-puzzles",
		Short: "Solve and verify chess capture puzzles",
		Long: `chess-puzzles finds shortest solutions to single-player chess puzzles.
The mover plays every move; the opponent's pieces never move. Each puzzle
module decides which moves are allowed and when the puzzle is solved:

  capture       every move captures; solved when the opponent has no pieces
  safe-capture  no move lands on an attacked square; solved when the opponent has no pieces
  king-hunt     no move lands on an attacked square; solved when the opponent king is taken`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (YAML)")
	flags.StringVarP(&a.logFile, "log-file", "l", "", "write diagnostics to this file instead of stderr")
	flags.BoolVar(&a.appendLog, "append-log", false, "append to the log file instead of truncating it")
	flags.CountVarP(&a.verbose, "verbose", "v", "increase verbosity (repeatable)")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "no diagnostics")
	flags.BoolVar(&a.json, "json", false, "output as JSON")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newMovesCmd(a))
	return root
}

// setup loads the configuration and applies the global flags to it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	cfg.Output.Writer = cmd.OutOrStdout()
	cfg.LogFile = cmd.ErrOrStderr()

	if a.json {
		cfg.Output.Format = config.JSON
	}
	cfg.Verbosity += a.verbose
	if a.quiet {
		cfg.Verbosity = 0
	}
	if err := a.setupLogFile(cfg); err != nil {
		return err
	}

	a.cfg = cfg
	return nil
}

// setupLogFile redirects diagnostics to --log-file when given.
func (a *app) setupLogFile(cfg *config.Config) error {
	if a.logFile == "" {
		return nil
	}

	var file *os.File
	var err error
	if a.appendLog {
		file, err = os.OpenFile(a.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	} else {
		file, err = os.Create(a.logFile)
	}
	if err != nil {
		return err
	}
	cfg.LogFile = file
	a.closers = append(a.closers, file)
	return nil
}

func (a *app) close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
