// Package vm implements a sandboxed, stack-based bytecode interpreter.
//
// This package contains:
//   - The tagged instruction set (one struct per instruction)
//   - The immutable Program container (instructions + label table)
//   - A ProgramBuilder with symbolic label marking
//   - The structured error taxonomy keyed to execution position
//   - The fetch-decode-execute engine with a hard operation ceiling
//
// A Program is constructed once, fully formed, and never mutated. Each call
// to Run owns a fresh operand stack, variable store, instruction pointer,
// and operation counter, so independent runs may share a Program freely.
package vm
