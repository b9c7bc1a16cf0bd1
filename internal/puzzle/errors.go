package puzzle

import "fmt"

// IoError reports an input file that could not be opened or read.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read input: %v", e.Err)
	}
	return fmt.Sprintf("read input %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// ParseError reports a line that does not match the puzzle grammar.
// Line is 1-based; 0 means the error is not tied to a single line.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "parse: " + e.Reason
	}
	return fmt.Sprintf("parse line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Errorf builds a ParseError for line n (0-based index into the input lines).
func Errorf(n int, text, format string, args ...any) *ParseError {
	return &ParseError{Line: n + 1, Text: text, Reason: fmt.Sprintf(format, args...)}
}

// LogicError reports well-formed input that asks for something impossible,
// such as moving more crates than a stack holds.
type LogicError struct {
	Op     string
	Reason string
}

func (e *LogicError) Error() string {
	return e.Op + ": " + e.Reason
}

// Logicf builds a LogicError.
func Logicf(op, format string, args ...any) *LogicError {
	return &LogicError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
