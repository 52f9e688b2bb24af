package vm

import "fmt"

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------
//
// Every failure mode of a run is one of the types below. All are comparable
// value types, so callers can match them with errors.Is against a fully
// populated target:
//
//	if errors.Is(err, vm.StackEmptyError{IP: 3}) { ... }
//
// Errors are returned by value from Run; the engine never panics on program
// bugs, never logs, and never retries.

// OperationsLimitError reports that the executed-instruction count exceeded
// the interpreter's operation ceiling.
type OperationsLimitError struct{}

func (OperationsLimitError) Error() string {
	return "operations limit exceeded"
}

// StackEmptyError reports a pop attempted with no operand on the stack.
type StackEmptyError struct {
	IP int
}

func (e StackEmptyError) Error() string {
	return fmt.Sprintf("stack is empty (IP=%d)", e.IP)
}

// NoReturnError reports that the instruction pointer moved past the end of
// the program without a RETURN_VALUE executing.
type NoReturnError struct{}

func (NoReturnError) Error() string {
	return "program ended without a return instruction"
}

// UnknownVariableError reports a READ_VAR on an unbound variable name.
type UnknownVariableError struct {
	Name string
	IP   int
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %q (IP=%d)", e.Name, e.IP)
}

// UnknownLabelError reports a taken jump whose label is absent from the
// program's label table.
type UnknownLabelError struct {
	Name string
	IP   int
}

func (e UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown label %q (IP=%d)", e.Name, e.IP)
}

// DivisionByZeroError reports a DIVIDE whose right operand is zero.
type DivisionByZeroError struct {
	IP int
}

func (e DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero (IP=%d)", e.IP)
}

// OverflowError reports an arithmetic instruction whose exact result does
// not fit in a Value. Val1 is the left operand (popped first), Val2 the
// right.
type OverflowError struct {
	Op   byte
	Val1 Value
	Val2 Value
	IP   int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("%d %c %d overflowed (IP=%d)", int64(e.Val1), e.Op, int64(e.Val2), e.IP)
}
