package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grasslang/grass/internal/repl"
)

func newReplCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse grass code interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := repl.NewSession(a.stdout, a.reporter(), a.parserOptions("")...)
			return repl.Start(session, a.stdout, Version)
		},
	}
}
