package errortypes

import (
	"errors"
	"fmt"
)

// Kinds of parse failure.  A *ParseError matches exactly one of these with
// errors.Is.
var (
	ErrUnclosedTag       = errors.New("unclosed tag")
	ErrUnclosedSection   = errors.New("unclosed section")
	ErrMismatchedSection = errors.New("mismatched section")
	ErrUnexpectedClose   = errors.New("unexpected close tag")
	ErrEmptyName         = errors.New("empty tag name")
	ErrBadDelimiter      = errors.New("invalid delimiter tag")
)

// ParseError reports malformed template syntax.  No output is ever produced
// for a template that fails to parse.
type ParseError struct {
	Kind error  // one of the Err* kinds above
	Msg  string // detail, e.g. the offending tag

	file string
	line int
	col  int
}

var _ ErrFilePos = &ParseError{}

// NewParseError returns a ParseError of the given kind at file:line:col.
func NewParseError(kind error, file string, line, col int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		file: file,
		line: line,
		col:  col,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template %s:%d:%d: %v: %s", e.file, e.line, e.col, e.Kind, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Kind }
func (e *ParseError) File() string  { return e.file }
func (e *ParseError) Line() int     { return e.line }
func (e *ParseError) Col() int      { return e.col }

// RenderError reports a failure while executing a parsed template, such as a
// partial that could not be loaded or a destination that rejected the output.
// A zero line means the failure has no position in the template.
type RenderError struct {
	Err error

	file string
	line int
	col  int
}

var _ ErrFilePos = &RenderError{}

// NewRenderError wraps err with the position of the node being rendered.
func NewRenderError(err error, file string, line, col int) *RenderError {
	return &RenderError{Err: err, file: file, line: line, col: col}
}

func (e *RenderError) Error() string {
	if e.line == 0 {
		return fmt.Sprintf("template %s: %v", e.file, e.Err)
	}
	return fmt.Sprintf("template %s:%d:%d: %v", e.file, e.line, e.col, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
func (e *RenderError) File() string  { return e.file }
func (e *RenderError) Line() int     { return e.line }
func (e *RenderError) Col() int      { return e.col }
