// Package cpu implements the assembler and interpreter for the blinking LED
// machine.
//
// The machine has an 8-bit accumulator (a) whose bits drive a row of eight
// LEDs, an 8-bit loop counter (b), and an instruction pointer (IP) into the
// assembled program. Execution ends when the IP runs past the last
// instruction.
//
// The assembler accepts one statement per line:
//
//	ld a,<0-255>
//	ld b,<0-255>
//	out (0),a
//	rlca
//	rrca
//	djnz <label>
//	<label>:
//
// Labels may be referenced before they are declared. Lines that do not
// parse are reported as diagnostics and left out of the program.
package cpu
