package cpu

import (
	"fmt"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_LOAD_A = Op(0) // ld a
	OP_LOAD_B = Op(1) // ld b
	OP_OUT    = Op(2) // out
	OP_RLCA   = Op(3) // rlca
	OP_RRCA   = Op(4) // rrca
	OP_DJNZ   = Op(5) // djnz
)

// Instruction is a single resolved machine instruction.
type Instruction struct {
	Op     Op
	Value  uint8 // Literal for OP_LOAD_A and OP_LOAD_B.
	Target int   // Resolved instruction index for OP_DJNZ.
}

// MakeLoadA creates an instruction loading a literal into the accumulator.
func MakeLoadA(value uint8) Instruction {
	return Instruction{Op: OP_LOAD_A, Value: value}
}

// MakeLoadB creates an instruction loading a literal into the loop counter.
func MakeLoadB(value uint8) Instruction {
	return Instruction{Op: OP_LOAD_B, Value: value}
}

// MakeOut creates an instruction displaying the accumulator on the LEDs.
func MakeOut() Instruction {
	return Instruction{Op: OP_OUT}
}

// MakeRlca creates an instruction rotating the accumulator left.
func MakeRlca() Instruction {
	return Instruction{Op: OP_RLCA}
}

// MakeRrca creates an instruction rotating the accumulator right.
func MakeRrca() Instruction {
	return Instruction{Op: OP_RRCA}
}

// MakeDjnz creates a decrement-and-jump-if-not-zero to an instruction index.
func MakeDjnz(target int) Instruction {
	return Instruction{Op: OP_DJNZ, Target: target}
}

// String returns the assembly language representation of this instruction.
// Jump targets are shown as instruction indexes.
func (ins Instruction) String() (out string) {
	switch ins.Op {
	case OP_LOAD_A, OP_LOAD_B:
		out = fmt.Sprintf("%v,%d", ins.Op, ins.Value)
	case OP_OUT:
		out = "out (0),a"
	case OP_DJNZ:
		out = fmt.Sprintf("%v %d", ins.Op, ins.Target)
	default:
		out = ins.Op.String()
	}

	return
}
