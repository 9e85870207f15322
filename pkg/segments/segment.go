// Package segments defines the contract between the prompt assembler
// and individual prompt segments. Each segment renders independently;
// a failing segment disappears from the prompt instead of breaking it.
package segments

import "context"

// Status tracks a segment render through its lifecycle. Disabled,
// Rendered and Failed are terminal; Rendering only exists while
// template evaluation is in flight.
type Status int

const (
	StatusDisabled Status = iota
	StatusRendering
	StatusRendered
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusRendering:
		return "rendering"
	case StatusRendered:
		return "rendered"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one segment render. Output is only
// meaningful for StatusRendered; Err is only set for StatusFailed.
type Result struct {
	Status Status
	Output string
	Err    error
}

// Disabled is the result of a segment short-circuited by configuration.
func Disabled() Result {
	return Result{Status: StatusDisabled}
}

// Rendered wraps a successful render. The empty string is a valid
// output (a segment may deliberately render nothing).
func Rendered(output string) Result {
	return Result{Status: StatusRendered, Output: output}
}

// Failed wraps a template or evaluation error. The assembler logs it
// and drops the segment; it never reaches the shell.
func Failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

// Segment is one self-contained unit of the prompt's output,
// independently enabled and styled.
type Segment interface {
	Name() string
	Render(ctx context.Context) Result
}
