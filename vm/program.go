package vm

import (
	"fmt"
	"sort"
	"strings"
)

// ---------------------------------------------------------------------------
// Program: immutable bytecode container
// ---------------------------------------------------------------------------

// Program is an ordered, 0-indexed instruction sequence plus a mapping from
// label name to instruction index.
//
// The label table is deliberately not validated against the instruction
// sequence: a label may exist with no referencing jump, and a jump may name
// a label absent from the table. The latter only surfaces, as an
// UnknownLabelError, when that jump is taken. This keeps construction total
// and side-effect-free.
type Program struct {
	instrs []Instruction
	labels map[string]int
}

// NewProgram builds a Program from an instruction sequence and a label
// table. Both are copied, so the program stays independent of the caller's
// slice and map. A nil labels map is treated as empty.
func NewProgram(instrs []Instruction, labels map[string]int) *Program {
	p := &Program{
		instrs: make([]Instruction, len(instrs)),
		labels: make(map[string]int, len(labels)),
	}
	copy(p.instrs, instrs)
	for name, index := range labels {
		p.labels[name] = index
	}
	return p
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.instrs)
}

// Instruction returns the instruction at index i, or false if i is out of
// range.
func (p *Program) Instruction(i int) (Instruction, bool) {
	if i < 0 || i >= len(p.instrs) {
		return nil, false
	}
	return p.instrs[i], true
}

// ResolveLabel returns the instruction index a label maps to, or false if
// the label was never inserted.
func (p *Program) ResolveLabel(name string) (int, bool) {
	index, ok := p.labels[name]
	return index, ok
}

// ---------------------------------------------------------------------------
// ProgramBuilder: construction helper with symbolic labels
// ---------------------------------------------------------------------------

// ProgramBuilder helps construct instruction sequences with symbolic
// labels. It is a convenience only; NewProgram accepts a hand-built slice
// and map just as well.
type ProgramBuilder struct {
	instrs []Instruction
	labels map[string]int
}

// NewProgramBuilder creates an empty builder.
func NewProgramBuilder() *ProgramBuilder {
	return &ProgramBuilder{
		instrs: make([]Instruction, 0, 16),
		labels: make(map[string]int),
	}
}

// Len returns the number of instructions emitted so far.
func (b *ProgramBuilder) Len() int {
	return len(b.instrs)
}

// Emit appends an instruction.
func (b *ProgramBuilder) Emit(instr Instruction) {
	b.instrs = append(b.instrs, instr)
}

// MarkLabel binds a label to the index of the next emitted instruction.
// Binding the same label twice is builder misuse and panics.
func (b *ProgramBuilder) MarkLabel(name string) {
	if _, ok := b.labels[name]; ok {
		panic("label already bound: " + name)
	}
	b.labels[name] = len(b.instrs)
}

// SetLabel binds a label to an explicit instruction index, replacing any
// prior binding. The index is not checked against the instruction sequence.
func (b *ProgramBuilder) SetLabel(name string, index int) {
	b.labels[name] = index
}

// Build returns the finished Program. The builder may keep being used; the
// Program is independent of it.
func (b *ProgramBuilder) Build() *Program {
	return NewProgram(b.instrs, b.labels)
}

// ---------------------------------------------------------------------------
// Disassembly
// ---------------------------------------------------------------------------

// Disassemble returns a positional listing of the program, one instruction
// per line, with label bindings annotated above the index they map to.
// Labels mapping past the end of the sequence are listed after it.
func (p *Program) Disassemble() string {
	names := make([]string, 0, len(p.labels))
	for name := range p.labels {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for i, instr := range p.instrs {
		for _, name := range names {
			if p.labels[name] == i {
				fmt.Fprintf(&sb, "%s:\n", name)
			}
		}
		fmt.Fprintf(&sb, "%04d  %s\n", i, instr)
	}
	for _, name := range names {
		if p.labels[name] >= len(p.instrs) {
			fmt.Fprintf(&sb, "%s: (-> %04d)\n", name, p.labels[name])
		}
	}
	return sb.String()
}
