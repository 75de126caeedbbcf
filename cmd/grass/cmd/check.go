package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grasslang/grass/internal/report"
)

func newCheckCommand(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check files...",
		Short: "Report syntax errors in grass source files",
		Long: `Parse every named file and report each one that fails.

The exit status is 65 when any file has an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := a.reporter()
			failed := 0
			for _, file := range args {
				if !a.checkFile(file, reporter) {
					failed++
				}
				reporter.Reset()
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%d checked, %d failed\n", len(args), failed)
			}
			if failed > 0 {
				return &ExitError{Code: ExitDataErr}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing but errors")
	return cmd
}

// checkFile parses one file and reports whether it is free of errors.
func (a *app) checkFile(file string, reporter report.Reporter) bool {
	text, err := os.ReadFile(file)
	if err != nil {
		reporter.Report(err)
		return false
	}
	_, ok := a.parse(source{file: file, text: string(text)}, reporter)
	return ok
}
