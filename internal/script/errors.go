package script

import "strconv"

// ParseError is returned when a step value cannot be interpreted.
type ParseError struct {
	// Type names what was being parsed, e.g. "counter op".
	Type string
	// Value is the rejected input.
	Value string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + " value: " + strconv.Quote(e.Value)
}

// StepError reports a problem with one step. Index is zero-based.
type StepError struct {
	Index int
	Err   error
}

func (e *StepError) Error() string {
	return "step " + strconv.Itoa(e.Index+1) + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error { return e.Err }
