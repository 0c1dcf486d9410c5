package pix

import "fmt"

// ValidationError reports a malformed or out-of-range constructor
// argument. Validation is eager and local: no Color, Coordinate, Line
// or Rect with an invalid field is ever observable, and validation
// errors are never caught inside the package.
type ValidationError struct {
	// Param names the rejected input ("color", "coordinate", "line",
	// "rect").
	Param string

	// Reason describes what was wrong with it.
	Reason string
}

func (e *ValidationError) Error() string {
	return "pix: invalid " + e.Param + ": " + e.Reason
}

// invalidf builds a *ValidationError with a formatted reason.
func invalidf(param, format string, args ...any) error {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
