package ast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPathRange is returned by SubPath when the requested slice falls outside
// the segment list.
var ErrPathRange = errors.New("sub-path out of range")

// PathExpression is a dotted chain such as a.b.c() kept as one flat list of
// segments rather than nested binary nodes.
type PathExpression struct {
	Path []Expression
}

// Len returns the number of segments.
func (expr *PathExpression) Len() int {
	return len(expr.Path)
}

// Text joins the segments with dots.
func (expr *PathExpression) Text() string {
	parts := make([]string, len(expr.Path))
	for i, seg := range expr.Path {
		parts[i] = seg.String()
	}
	return strings.Join(parts, ".")
}

// SubPath derives a path over segments [start, start+length). A length of 0
// runs to the end; a negative length is taken as Len()+length segments, so
// SubPath(0, -1) drops the last segment.
// Segments are shared with the receiver; the segment list is not.
func (expr *PathExpression) SubPath(start, length int) (*PathExpression, error) {
	n := len(expr.Path)
	switch {
	case length == 0:
		length = n - start
	case length < 0:
		length = n + length
	}
	if start < 0 || length < 0 || start+length > n {
		return nil, fmt.Errorf("%w: start %d length %d of %d segments", ErrPathRange, start, length, n)
	}

	segments := make([]Expression, length)
	copy(segments, expr.Path[start:start+length])
	return &PathExpression{Path: segments}, nil
}
