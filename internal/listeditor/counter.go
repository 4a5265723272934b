package listeditor

// CounterOp is one of the counter demo's buttons.
type CounterOp int

const (
	Increment CounterOp = iota + 1
	Decrement
	Reset
)

func (op CounterOp) String() string {
	switch op {
	case Increment:
		return "inc"
	case Decrement:
		return "dec"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// ParseCounterOp accepts "inc", "dec" and "reset" (plus a few long forms).
func ParseCounterOp(s string) (CounterOp, bool) {
	switch s {
	case "inc", "increment", "+":
		return Increment, true
	case "dec", "decrement", "-":
		return Decrement, true
	case "reset", "0":
		return Reset, true
	}
	return 0, false
}

// Count applies op to n. Unknown ops return n. The counter may go negative.
func Count(n int, op CounterOp) int {
	switch op {
	case Increment:
		return n + 1
	case Decrement:
		return n - 1
	case Reset:
		return 0
	}
	return n
}
