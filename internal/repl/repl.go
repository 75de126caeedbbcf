// Package repl implements an interactive loop that parses each entry and
// prints its syntax tree.
package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/grasslang/grass/ast"
	"github.com/grasslang/grass/internal/report"
	"github.com/grasslang/grass/parser"
	"github.com/grasslang/grass/scanner"
	"github.com/grasslang/grass/token"
)

const (
	Prompt             = ">> "
	ContinuationPrompt = ".. "
)

// HistoryFile is where the line history is kept between runs.
var HistoryFile = filepath.Join(os.TempDir(), ".grass_history")

// Session holds the state of one interactive run. It is separated from the
// terminal so that it can be driven line by line.
type Session struct {
	out      io.Writer
	reporter report.Reporter
	options  []parser.Option
	printer  ast.Printer

	buffer     strings.Builder
	showTokens bool
}

func NewSession(out io.Writer, reporter report.Reporter, options ...parser.Option) *Session {
	return &Session{out: out, reporter: reporter, options: options}
}

// Pending reports whether an incomplete entry is buffered.
func (session *Session) Pending() bool {
	return session.buffer.Len() > 0
}

// Feed adds one line of input. Once the buffered entry is complete it is
// parsed and the buffer cleared. Feed returns false when the user asked to
// leave.
func (session *Session) Feed(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !session.Pending() {
		switch {
		case trimmed == "":
			return true
		case trimmed == "exit" || trimmed == "quit" || trimmed == ":quit":
			return false
		case strings.HasPrefix(trimmed, ":"):
			session.command(trimmed)
			return true
		}
	}

	if session.Pending() {
		session.buffer.WriteByte('\n')
	}
	session.buffer.WriteString(line)
	entry := session.buffer.String()
	if NeedsMoreInput(entry) {
		return true
	}
	session.buffer.Reset()
	session.Eval(entry)
	return true
}

// Cancel drops a partially typed entry.
func (session *Session) Cancel() {
	session.buffer.Reset()
}

// Eval parses src and prints one S-expression per statement.
func (session *Session) Eval(src string) {
	defer session.reporter.Reset()
	if styled, ok := session.reporter.(*report.StyledReporter); ok {
		styled.SetSource(src)
	}

	tokens, err := scanner.New(src).Scan()
	if err != nil {
		session.reporter.Report(err)
		return
	}
	if session.showTokens {
		for _, tok := range tokens {
			fmt.Fprintf(session.out, "%-6s %s\n", tok.Pos, tok)
		}
	}

	program, err := parser.New(scanner.NewStream(tokens), session.options...).Parse()
	if err != nil {
		session.reporter.Report(err)
		return
	}
	io.WriteString(session.out, session.printer.PrintAst(program))
}

func (session *Session) command(cmd string) {
	switch cmd {
	case ":tokens":
		session.showTokens = !session.showTokens
		state := "off"
		if session.showTokens {
			state = "on"
		}
		fmt.Fprintf(session.out, "token listing %s\n", state)
	case ":help":
		fmt.Fprintln(session.out, "Enter grass code to see its syntax tree.")
		fmt.Fprintln(session.out, "  :tokens  toggle the token listing")
		fmt.Fprintln(session.out, "  :help    show this message")
		fmt.Fprintln(session.out, "  exit     leave (or Ctrl+D)")
	default:
		fmt.Fprintf(session.out, "unknown command %s (try :help)\n", cmd)
	}
}

// Start runs the session on the terminal with line editing, history and
// keyword completion until the user exits.
func Start(session *Session, out io.Writer, version string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetMultiLineMode(true)
	line.SetCompleter(complete)

	if f, err := os.Open(HistoryFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(HistoryFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintf(out, "grass %s\nType ':help' for commands, 'exit' or Ctrl+D to quit\n", version)
	for {
		prompt := Prompt
		if session.Pending() {
			prompt = ContinuationPrompt
		}
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			session.Cancel()
			fmt.Fprintln(out, "^C")
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if !session.Feed(input) {
			return nil
		}
	}
}

func complete(line string) []string {
	start := strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) + 1
	prefix, word := line[:start], line[start:]
	if word == "" {
		return nil
	}

	var matches []string
	for keyword := range token.Keywords {
		if strings.HasPrefix(keyword, word) {
			matches = append(matches, prefix+keyword)
		}
	}
	sort.Strings(matches)
	return matches
}

// NeedsMoreInput reports whether src has unclosed braces, brackets,
// parentheses, strings, internal code or block comments.
func NeedsMoreInput(src string) bool {
	depth := 0
	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			depth--
		case '"', '\'':
			for i++; i < len(runes) && runes[i] != r; i++ {
				if runes[i] == '\\' {
					i++
				}
			}
			if i >= len(runes) {
				return true
			}
		case '`':
			for i++; i < len(runes) && runes[i] != '`'; i++ {
			}
			if i >= len(runes) {
				return true
			}
		case '/':
			if i+1 >= len(runes) {
				break
			}
			switch runes[i+1] {
			case '/':
				for i < len(runes) && runes[i] != '\n' {
					i++
				}
			case '*':
				for i += 2; i+1 < len(runes) && !(runes[i] == '*' && runes[i+1] == '/'); i++ {
				}
				if i+1 >= len(runes) {
					return true
				}
				i++
			}
		}
	}
	return depth > 0
}
