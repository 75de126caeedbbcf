package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grasslang/grass"
)

func newTokensCommand(a *app) *cobra.Command {
	var inline string

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "List the tokens of grass source with their positions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.sources(args, inline)
			if err != nil {
				return err
			}
			src := sources[0]

			tokens, err := grass.Tokenize(src.text)
			if err != nil {
				reporter := a.reporter()
				setSource(reporter, src.text)
				reporter.Report(withFile(err, src.file))
				return &ExitError{Code: ExitDataErr}
			}
			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintf(out, "%-8s %-14s %s\n", tok.Pos, tok.Type, tokenText(tok.Lexeme))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inline, "eval", "e", "", "tokenize `CODE` instead of a file")
	return cmd
}

func tokenText(lexeme string) string {
	if lexeme == "" {
		return ""
	}
	return fmt.Sprintf("%q", lexeme)
}
