package vm

import "fmt"

// Value is the sole runtime value type: a 64-bit signed integer.
type Value int64

// ---------------------------------------------------------------------------
// Instruction set
// ---------------------------------------------------------------------------

// Instruction is one atomic operation in the instruction set. The set is
// closed: every variant is a struct in this file, and the engine dispatches
// over them exhaustively. A value of an unknown type reaching the engine is
// a programming error and panics.
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// LoadVal pushes an immediate value onto the operand stack.
type LoadVal struct {
	Val Value
}

// WriteVar pops the top of stack and binds it to the named variable,
// overwriting any prior binding. The variable namespace is a single flat
// mapping for the whole run; there is no scoping or shadowing.
type WriteVar struct {
	Name string
}

// ReadVar pushes the value bound to the named variable.
type ReadVar struct {
	Name string
}

// Add pops two operands and pushes their checked sum.
type Add struct{}

// Subtract pops two operands and pushes their checked difference. The value
// popped first is the left operand.
type Subtract struct{}

// Multiply pops two operands and pushes their checked product.
type Multiply struct{}

// Divide pops two operands and pushes their quotient, truncated toward
// zero. The value popped first is the dividend.
type Divide struct{}

// ReturnValue pops one value and ends the run successfully with it.
type ReturnValue struct{}

// JumpIfNeg pops one value and jumps to the named label if it is negative.
type JumpIfNeg struct {
	Label string
}

// JumpIfPos pops one value and jumps to the named label if it is positive.
type JumpIfPos struct {
	Label string
}

// JumpIfZero pops one value and jumps to the named label if it is zero.
type JumpIfZero struct {
	Label string
}

// JumpIfNotZero pops one value and jumps to the named label if it is
// non-zero.
type JumpIfNotZero struct {
	Label string
}

func (LoadVal) isInstruction()       {}
func (WriteVar) isInstruction()      {}
func (ReadVar) isInstruction()       {}
func (Add) isInstruction()           {}
func (Subtract) isInstruction()      {}
func (Multiply) isInstruction()      {}
func (Divide) isInstruction()        {}
func (ReturnValue) isInstruction()   {}
func (JumpIfNeg) isInstruction()     {}
func (JumpIfPos) isInstruction()     {}
func (JumpIfZero) isInstruction()    {}
func (JumpIfNotZero) isInstruction() {}

// ---------------------------------------------------------------------------
// Mnemonics
// ---------------------------------------------------------------------------

func (i LoadVal) String() string       { return fmt.Sprintf("LOAD_VAL %d", int64(i.Val)) }
func (i WriteVar) String() string      { return fmt.Sprintf("WRITE_VAR %s", i.Name) }
func (i ReadVar) String() string       { return fmt.Sprintf("READ_VAR %s", i.Name) }
func (Add) String() string             { return "ADD" }
func (Subtract) String() string        { return "SUBTRACT" }
func (Multiply) String() string        { return "MULTIPLY" }
func (Divide) String() string          { return "DIVIDE" }
func (ReturnValue) String() string     { return "RETURN_VALUE" }
func (i JumpIfNeg) String() string     { return fmt.Sprintf("JUMP_IF_NEG %s", i.Label) }
func (i JumpIfPos) String() string     { return fmt.Sprintf("JUMP_IF_POS %s", i.Label) }
func (i JumpIfZero) String() string    { return fmt.Sprintf("JUMP_IF_ZERO %s", i.Label) }
func (i JumpIfNotZero) String() string { return fmt.Sprintf("JUMP_IF_NOT_ZERO %s", i.Label) }
