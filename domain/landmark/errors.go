package landmark

import "fmt"

// FormatError reports a malformed line in a landmark text file. Line is
// 1-based.
type FormatError struct {
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("landmark format: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IndexError reports access to a landmark index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("landmark index %d out of range [0,%d)", e.Index, e.Len)
}
