package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Opcode is an assembled instruction with its source location.
type Opcode struct {
	LineNo      int    // Source line number, from 1.
	Ip          int    // Instruction index.
	Text        string // Source line, as written.
	Instruction Instruction
}

// Program is an assembled, immutable instruction list.
type Program struct {
	Opcodes []Opcode
	Labels  LabelTable
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Opcodes)
}

// Fetch returns the instruction at ip.
func (prog *Program) Fetch(ip int) (ins Instruction, ok bool) {
	if ip < 0 || ip >= len(prog.Opcodes) {
		return
	}

	return prog.Opcodes[ip].Instruction, true
}

// Debug returns the opcode at ip, or nil if there is none.
func (prog *Program) Debug(ip int) (op *Opcode) {
	if ip < 0 || ip >= len(prog.Opcodes) {
		return
	}

	return &prog.Opcodes[ip]
}

// Instructions iterates over the instructions and their indexes.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for ip, op := range prog.Opcodes {
			if !yield(ip, op.Instruction) {
				return
			}
		}
	}
}

// String returns the program as assembly source, with jump targets
// expressed as labels again.
func (prog *Program) String() string {
	var sb strings.Builder

	for ip := 0; ip <= prog.Len(); ip++ {
		for _, name := range prog.Labels.At(ip) {
			fmt.Fprintf(&sb, "%v:\n", name)
		}

		ins, ok := prog.Fetch(ip)
		if !ok {
			break
		}

		if ins.Op == OP_DJNZ {
			names := prog.Labels.At(ins.Target)
			if len(names) > 0 {
				fmt.Fprintf(&sb, "%v %v\n", ins.Op, names[0])
				continue
			}
		}

		fmt.Fprintf(&sb, "%v\n", ins)
	}

	return sb.String()
}
