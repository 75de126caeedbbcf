// Package report displays diagnostics produced while scanning and parsing.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grasslang/grass/parser"
	"github.com/grasslang/grass/scanner"
	"github.com/grasslang/grass/token"
)

// Reporter defines the interface for structures that can display errors to
// the user. Reporting code stays separate from the code that detects errors.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes errors as-is to the inner writer.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// StyledReporter renders errors with a colored label and, when the source is
// known, the offending line with a caret under the error column. Colors are
// dropped automatically when the writer is not a terminal.
type StyledReporter struct {
	writer io.Writer
	hadErr bool
	lines  []string

	label   lipgloss.Style
	where   lipgloss.Style
	gutter  lipgloss.Style
	pointer lipgloss.Style
}

func NewStyledReporter(writer io.Writer) *StyledReporter {
	renderer := lipgloss.NewRenderer(writer)
	return &StyledReporter{
		writer:  writer,
		label:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		where:   renderer.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		gutter:  renderer.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		pointer: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
	}
}

// SetSource gives the reporter the text that subsequent errors refer to.
func (reporter *StyledReporter) SetSource(source string) {
	reporter.lines = strings.Split(source, "\n")
}

func (reporter *StyledReporter) Report(err error) {
	reporter.hadErr = true

	pos, file, message, ok := describe(err)
	if !ok {
		fmt.Fprintf(reporter.writer, "%s %s\n", reporter.label.Render("error:"), err)
		return
	}

	where := pos.String()
	if file != "" {
		where = file + ":" + where
	}
	fmt.Fprintf(reporter.writer, "%s %s %s\n",
		reporter.where.Render(where),
		reporter.label.Render("error:"),
		message,
	)

	if pos.Line < 1 || pos.Line > len(reporter.lines) {
		return
	}
	line := reporter.lines[pos.Line-1]
	number := fmt.Sprintf("%4d | ", pos.Line)
	fmt.Fprintf(reporter.writer, "%s%s\n", reporter.gutter.Render(number), strings.ReplaceAll(line, "\t", tabWidth))
	indent := strings.Repeat(" ", len(number)+caretOffset(line, pos.Column))
	fmt.Fprintf(reporter.writer, "%s%s\n", indent, reporter.pointer.Render("^"))
}

func (reporter *StyledReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *StyledReporter) Reset() {
	reporter.hadErr = false
}

func describe(err error) (token.Position, string, string, bool) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		message := syntaxErr.Message
		if len(syntaxErr.Expected) > 0 {
			message += fmt.Sprintf(" (expected %s, found %s)", syntaxErr.ExpectedString(), syntaxErr.Found())
		} else if syntaxErr.Token.Type == token.EOF {
			message += " (at end of input)"
		}
		return syntaxErr.Pos, syntaxErr.File, message, true
	}
	var lexErr *scanner.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, lexErr.File, lexErr.Message, true
	}
	return token.Position{}, "", "", false
}

const tabWidth = "    "

// caretOffset converts a 1-based rune column into a display offset in the
// line as printed, with tabs expanded.
func caretOffset(line string, column int) int {
	offset := 0
	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			offset += len(tabWidth)
		} else {
			offset++
		}
	}
	return offset
}
