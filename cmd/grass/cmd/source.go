package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grasslang/grass"
	"github.com/grasslang/grass/ast"
	"github.com/grasslang/grass/internal/report"
	"github.com/grasslang/grass/scanner"
)

// ExitNoInput is returned when a named source file cannot be read.
const ExitNoInput = 66

// source is one unit of input. File is empty for inline code and stdin.
type source struct {
	file string
	text string
}

func (src source) name() string {
	if src.file == "" {
		return "<input>"
	}
	return src.file
}

// sources collects the input of a command: inline code when given, else the
// named files, else stdin.
func (a *app) sources(files []string, inline string) ([]source, error) {
	if inline != "" {
		return []source{{text: inline}}, nil
	}
	if len(files) == 0 {
		text, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []source{{text: string(text)}}, nil
	}

	sources := make([]source, 0, len(files))
	for _, file := range files {
		text, err := os.ReadFile(file)
		if err != nil {
			return nil, &ExitError{Code: ExitNoInput, Err: err}
		}
		sources = append(sources, source{file: file, text: string(text)})
	}
	return sources, nil
}

// parse parses src, sending any error to reporter.
func (a *app) parse(src source, reporter report.Reporter) (*ast.Ast, bool) {
	setSource(reporter, src.text)
	program, err := grass.Parse(src.text, a.parserOptions(src.file)...)
	if err != nil {
		reporter.Report(err)
		a.logger.Debug("parse failed", "source", src.name())
		return nil, false
	}
	a.logger.Debug("parsed", "source", src.name(), "statements", len(program.Statements))
	return program, true
}

// setSource lets a styled reporter quote the offending line.
func setSource(reporter report.Reporter, text string) {
	if styled, ok := reporter.(*report.StyledReporter); ok {
		styled.SetSource(text)
	}
}

func withFile(err error, file string) error {
	var lexErr *scanner.LexError
	if file != "" && errors.As(err, &lexErr) {
		return lexErr.WithFile(file)
	}
	return err
}
