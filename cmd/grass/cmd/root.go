// Package cmd implements the grass command tree.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/grasslang/grass/internal/config"
	"github.com/grasslang/grass/internal/report"
	"github.com/grasslang/grass/parser"
)

// Exit statuses, following the BSD sysexits convention.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 64
	ExitDataErr = 65
)

// ExitError carries the status a command wants the process to exit with.
type ExitError struct {
	Code int
	Err  error
}

func (err *ExitError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("exit status %d", err.Code)
	}
	return err.Err.Error()
}

func (err *ExitError) Unwrap() error {
	return err.Err
}

// app is the state shared by all commands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configFile string
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree writing to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "grass",
		Short: "Front end tools for the grass language",
		Long: `grass tokenizes and parses grass source code.

It prints syntax trees, checks files for errors, re-checks them as they
change, and offers an interactive parse loop.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./grass.toml or $GRASS_CONFIG)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		newParseCommand(a),
		newTokensCommand(a),
		newCheckCommand(a),
		newWatchCommand(a),
		newReplCommand(a),
		newVersionCommand(a),
	)
	return root
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	root := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	return run(root, os.Stderr)
}

func run(root *cobra.Command, stderr io.Writer) int {
	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintln(stderr, exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitFailure
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	var err error
	if a.configFile != "" {
		a.cfg, err = config.Load(a.configFile)
	} else {
		a.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	if a.noColor {
		a.cfg.Output.Color = false
	}
	a.logger.Debug("configuration loaded", "format", a.cfg.Output.Format, "max_depth", a.cfg.Parser.MaxDepth)
	return nil
}

func (a *app) reporter() report.Reporter {
	if a.cfg.Output.Color {
		return report.NewStyledReporter(a.stderr)
	}
	return report.NewSimpleReporter(a.stderr)
}

func (a *app) parserOptions(filename string) []parser.Option {
	options := []parser.Option{parser.WithMaxDepth(a.cfg.Parser.MaxDepth)}
	if filename != "" {
		options = append(options, parser.WithFilename(filename))
	}
	return options
}
