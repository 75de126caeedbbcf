package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grasslang/grass/ast"
	"github.com/grasslang/grass/internal/config"
	"github.com/grasslang/grass/internal/dump"
)

func newParseCommand(a *app) *cobra.Command {
	var format, inline, golden string

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Print the syntax tree of grass source",
		Long: `Parse grass source and print its syntax tree.

Source is read from the named files, from --eval, or from stdin. The tree
is printed as S-expressions by default, or as YAML or JSON.

With --golden the tree is compared against a YAML dump written earlier by
--format yaml instead of being printed; a mismatch exits with status 65.`,
		Example: `  grass parse main.grass
  grass parse -e '1 + 2 * 3'
  grass parse --format yaml lib.grass > lib.yaml
  grass parse --golden lib.yaml lib.grass`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.Format
			}
			if !config.IsFormat(format) {
				return &ExitError{
					Code: ExitUsage,
					Err:  fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(config.Formats, ", ")),
				}
			}

			sources, err := a.sources(args, inline)
			if err != nil {
				return err
			}
			var want []*dump.Tree
			if golden != "" {
				if len(sources) != 1 {
					return &ExitError{Code: ExitUsage, Err: fmt.Errorf("--golden takes exactly one source")}
				}
				if want, err = readGolden(golden); err != nil {
					return err
				}
			}

			reporter := a.reporter()
			for _, src := range sources {
				program, ok := a.parse(src, reporter)
				if !ok {
					continue
				}
				if golden != "" {
					if diff := dump.Diff(want, dump.FromAst(program)); diff != "" {
						return &ExitError{Code: ExitDataErr, Err: fmt.Errorf("%s: tree differs from %s: %s", src.name(), golden, diff)}
					}
					a.logger.Debug("golden tree matches", "source", src.name(), "golden", golden)
					continue
				}
				if err := writeTree(cmd.OutOrStdout(), program, format); err != nil {
					return err
				}
			}
			if reporter.HadError() {
				return &ExitError{Code: ExitDataErr}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: sexpr, yaml or json (default from config)")
	cmd.Flags().StringVarP(&inline, "eval", "e", "", "parse `CODE` instead of files")
	cmd.Flags().StringVar(&golden, "golden", "", "compare the tree with the YAML dump in `FILE`")
	return cmd
}

func readGolden(path string) ([]*dump.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ExitError{Code: ExitNoInput, Err: err}
	}
	trees, err := dump.ReadYAML(data)
	if err != nil {
		return nil, &ExitError{Code: ExitDataErr, Err: fmt.Errorf("%s: %w", path, err)}
	}
	return trees, nil
}

func writeTree(w io.Writer, program *ast.Ast, format string) error {
	if format == "sexpr" {
		printer := &ast.Printer{}
		_, err := io.WriteString(w, printer.PrintAst(program))
		return err
	}
	return dump.Write(w, program, format)
}
