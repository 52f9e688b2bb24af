package vm

import (
	"fmt"
	"math"
)

// DefaultMaxOps is the default ceiling on executed instructions per run.
const DefaultMaxOps uint64 = 1000

// ---------------------------------------------------------------------------
// Interpreter: bytecode execution engine
// ---------------------------------------------------------------------------

// Interpreter executes Programs. It holds configuration only: every Run
// call owns a fresh operand stack, variable store, instruction pointer, and
// operation counter, so a single Interpreter may serve concurrent runs
// without synchronization.
type Interpreter struct {
	maxOps uint64
}

// NewInterpreter creates an interpreter with the default operation ceiling.
func NewInterpreter() *Interpreter {
	return &Interpreter{maxOps: DefaultMaxOps}
}

// NewInterpreterWithLimit creates an interpreter whose runs fail with
// OperationsLimitError once more than maxOps instructions execute.
func NewInterpreterWithLimit(maxOps uint64) *Interpreter {
	return &Interpreter{maxOps: maxOps}
}

// Run executes a program with the default operation ceiling.
func Run(p *Program) (Value, error) {
	return NewInterpreter().Run(p)
}

// ---------------------------------------------------------------------------
// Operand stack
// ---------------------------------------------------------------------------

// stack is the operand stack for a single run.
type stack []Value

func (s *stack) push(v Value) {
	*s = append(*s, v)
}

// pop removes and returns the top of stack. ip is the current instruction
// pointer, carried into the StackEmptyError when nothing is on the stack.
func (s *stack) pop(ip int) (Value, error) {
	old := *s
	if len(old) == 0 {
		return 0, StackEmptyError{IP: ip}
	}
	v := old[len(old)-1]
	*s = old[:len(old)-1]
	return v, nil
}

// pop2 pops the two operands of a binary instruction. The value popped
// first is the left operand. An empty stack fails at the first empty pop.
func (s *stack) pop2(ip int) (val1, val2 Value, err error) {
	if val1, err = s.pop(ip); err != nil {
		return 0, 0, err
	}
	if val2, err = s.pop(ip); err != nil {
		return 0, 0, err
	}
	return val1, val2, nil
}

// ---------------------------------------------------------------------------
// Checked arithmetic
// ---------------------------------------------------------------------------

func addChecked(a, b Value) (Value, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func subChecked(a, b Value) (Value, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

func mulChecked(a, b Value) (Value, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

// ---------------------------------------------------------------------------
// Main interpreter loop
// ---------------------------------------------------------------------------

// jumpTarget resolves a taken jump's label to its instruction index.
func (p *Program) jumpTarget(label string, ip int) (int, error) {
	target, ok := p.labels[label]
	if !ok {
		return 0, UnknownLabelError{Name: label, IP: ip}
	}
	return target, nil
}

// Run executes the program to completion and returns its result: the value
// popped by the first RETURN_VALUE, or the first error encountered. Errors
// abort the run immediately; a failed run yields no value.
func (in *Interpreter) Run(p *Program) (Value, error) {
	var st stack
	vars := make(map[string]Value)
	ip := 0
	var executed uint64

	for {
		executed++
		if executed > in.maxOps {
			return 0, OperationsLimitError{}
		}

		instr, ok := p.Instruction(ip)
		if !ok {
			// Fell off the end without an explicit return.
			return 0, NoReturnError{}
		}

		switch instr := instr.(type) {
		case LoadVal:
			st.push(instr.Val)

		case WriteVar:
			v, err := st.pop(ip)
			if err != nil {
				return 0, err
			}
			vars[instr.Name] = v

		case ReadVar:
			v, ok := vars[instr.Name]
			if !ok {
				return 0, UnknownVariableError{Name: instr.Name, IP: ip}
			}
			st.push(v)

		case Add:
			val1, val2, err := st.pop2(ip)
			if err != nil {
				return 0, err
			}
			sum, ok := addChecked(val1, val2)
			if !ok {
				return 0, OverflowError{Op: '+', Val1: val1, Val2: val2, IP: ip}
			}
			st.push(sum)

		case Subtract:
			val1, val2, err := st.pop2(ip)
			if err != nil {
				return 0, err
			}
			diff, ok := subChecked(val1, val2)
			if !ok {
				return 0, OverflowError{Op: '-', Val1: val1, Val2: val2, IP: ip}
			}
			st.push(diff)

		case Multiply:
			val1, val2, err := st.pop2(ip)
			if err != nil {
				return 0, err
			}
			prod, ok := mulChecked(val1, val2)
			if !ok {
				return 0, OverflowError{Op: '*', Val1: val1, Val2: val2, IP: ip}
			}
			st.push(prod)

		case Divide:
			val1, val2, err := st.pop2(ip)
			if err != nil {
				return 0, err
			}
			// The zero check comes before anything else, regardless of
			// the left operand.
			if val2 == 0 {
				return 0, DivisionByZeroError{IP: ip}
			}
			if val1 == math.MinInt64 && val2 == -1 {
				return 0, OverflowError{Op: '/', Val1: val1, Val2: val2, IP: ip}
			}
			st.push(val1 / val2)

		case ReturnValue:
			return st.pop(ip)

		case JumpIfNeg:
			v, err := st.pop(ip)
			if err != nil {
				return 0, err
			}
			if v < 0 {
				if ip, err = p.jumpTarget(instr.Label, ip); err != nil {
					return 0, err
				}
				continue
			}

		case JumpIfPos:
			v, err := st.pop(ip)
			if err != nil {
				return 0, err
			}
			if v > 0 {
				if ip, err = p.jumpTarget(instr.Label, ip); err != nil {
					return 0, err
				}
				continue
			}

		case JumpIfZero:
			v, err := st.pop(ip)
			if err != nil {
				return 0, err
			}
			if v == 0 {
				if ip, err = p.jumpTarget(instr.Label, ip); err != nil {
					return 0, err
				}
				continue
			}

		case JumpIfNotZero:
			v, err := st.pop(ip)
			if err != nil {
				return 0, err
			}
			if v != 0 {
				if ip, err = p.jumpTarget(instr.Label, ip); err != nil {
					return 0, err
				}
				continue
			}

		default:
			panic(fmt.Sprintf("Run: unhandled instruction %T", instr))
		}

		ip++
	}
}
