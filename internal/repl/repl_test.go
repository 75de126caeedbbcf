package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grasslang/grass/internal/report"
)

func newTestSession() (*Session, *strings.Builder, *strings.Builder) {
	var out, errs strings.Builder
	return NewSession(&out, report.NewSimpleReporter(&errs)), &out, &errs
}

func TestNeedsMoreInput(t *testing.T) {
	testCases := []struct {
		src  string
		more bool
	}{
		{"", false},
		{"1 + 2", false},
		{"fn f() {", true},
		{"fn f() {\n return 1\n}", false},
		{"f(1,", true},
		{"a[", true},
		{`"open`, true},
		{`"has } brace"`, false},
		{`"escaped \" quote`, true},
		{`'{'`, false},
		{"`raw", true},
		{"`{`", false},
		{"x // {", false},
		{"/* open", true},
		{"/* { */ x", false},
		{"loop { /* } */", true},
		{"}", false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.more, NeedsMoreInput(tc.src), tc.src)
	}
}

func TestSessionEval(t *testing.T) {
	assert := assert.New(t)
	session, out, errs := newTestSession()

	assert.True(session.Feed("1 + 2 * 3"))
	assert.Equal("(+ 1 (* 2 3))\n", out.String())
	assert.Empty(errs.String())
}

func TestSessionMultiLine(t *testing.T) {
	assert := assert.New(t)
	session, out, _ := newTestSession()

	assert.True(session.Feed("fn add(a: Int, b: Int): Int {"))
	assert.True(session.Pending())
	assert.Empty(out.String())

	assert.True(session.Feed("  return a + b"))
	assert.True(session.Feed("}"))
	assert.False(session.Pending())
	assert.Equal("(fn add (params (def a Int) (def b Int)) Int (block (return (+ a b))))\n", out.String())
}

func TestSessionReportsErrors(t *testing.T) {
	assert := assert.New(t)
	session, out, errs := newTestSession()

	session.Feed("new 5")
	assert.Empty(out.String())
	assert.Equal("[line 1:5] Error at '5': 'new' must be followed by a constructor call.\n", errs.String())

	// The session keeps going after an error.
	session.Feed("x")
	assert.Equal("x\n", out.String())
}

func TestSessionCommands(t *testing.T) {
	assert := assert.New(t)
	session, out, _ := newTestSession()

	assert.True(session.Feed(":tokens"))
	assert.Equal("token listing on\n", out.String())

	out.Reset()
	session.Feed("a;")
	assert.Equal("1:1    IDENTIFIER a\n1:2    ; ;\n1:3    EOF\na\n", out.String())

	out.Reset()
	session.Feed(":nope")
	assert.Contains(out.String(), "unknown command :nope")

	assert.False(session.Feed("exit"))
	assert.False(session.Feed(" quit "))
}

func TestSessionCancel(t *testing.T) {
	assert := assert.New(t)
	session, out, _ := newTestSession()

	session.Feed("loop {")
	session.Cancel()
	assert.False(session.Pending())

	// exit is only a command at the start of an entry.
	session.Feed("loop {")
	assert.True(session.Feed("exit"))
	session.Feed("}")
	assert.Equal("(loop (block exit))\n", out.String())
}

func TestComplete(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"let"}, complete("le"))
	assert.Equal([]string{"x = new"}, complete("x = ne"))
	assert.Equal([]string{"f(return"}, complete("f(ret"))
	assert.Nil(complete("x "))
	assert.Nil(complete("zzz"))
}
