// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"maps"
	"slices"

	"github.com/golang/glog"
)

// Assembler is a two pass assembler for the LED machine.
type Assembler struct {
	Verbose bool       // If set, verbosely logs the assembler actions.
	Opcode  []Opcode   // List of generated opcodes.
	Label   LabelTable // Map of jump labels to opcode indexes.
}

// prescan resolves every jump, so the first pass can see all the label
// declarations without knowing where they are.
type prescan struct {
	declared LabelTable
}

func (ps prescan) Lookup(name string) (int, bool) {
	return 0, true
}

func (ps prescan) Declared(name string) bool {
	return ps.declared.Declared(name)
}

// linker resolves jumps against the complete label table, and duplicate
// declarations against the labels seen so far.
type linker struct {
	table LabelTable
	seen  LabelTable
}

func (ln linker) Lookup(name string) (int, bool) {
	return ln.table.Lookup(name)
}

func (ln linker) Declared(name string) bool {
	return ln.seen.Declared(name)
}

// labelPass finds every label and the index of the instruction following it.
//
// A djnz only counts towards the index when its target is declared
// somewhere, as an unresolved djnz is dropped by the second pass.
func (asm *Assembler) labelPass(source []string) (table LabelTable) {
	declared := LabelTable{}
	lines := make([]Line, len(source))

	for n, text := range source {
		line := Classify(text, prescan{declared: declared})
		if line.Kind == LINE_LABEL {
			asm.define(declared, line.Label, 0)
		}
		lines[n] = line
	}

	table = make(LabelTable, len(declared))
	ip := 0
	for _, line := range lines {
		switch line.Kind {
		case LINE_LABEL:
			asm.define(table, line.Label, ip)
		case LINE_INSTRUCTION:
			if line.Instruction.Op == OP_DJNZ && !declared.Declared(line.Label) {
				continue
			}
			ip++
		}
	}

	return
}

// Assemble converts source lines into a Program.
//
// Lines that fail to parse are returned as diagnostics, in source order, and
// are left out of the program.
func (asm *Assembler) Assemble(source []string) (prog *Program, diags []*ErrSyntax) {
	asm.Opcode = asm.Opcode[:0]
	asm.Label = asm.labelPass(source)

	link := linker{table: asm.Label, seen: LabelTable{}}

	for n, text := range source {
		lineno := n + 1

		line := Classify(text, link)

		if asm.Verbose {
			glog.Infof("%v: %v: %v", lineno, line.Kind, text)
		}

		switch line.Kind {
		case LINE_ERROR:
			diags = append(diags, &ErrSyntax{LineNo: lineno, Line: text, Err: line.Err})
		case LINE_LABEL:
			ip := asm.currentIp()
			if asm.Label[line.Label] != ip {
				glog.Fatalf("Label '%s' at line %d resolved to %d, expected %d", line.Label, lineno, asm.Label[line.Label], ip)
			}
			asm.define(link.seen, line.Label, ip)
		case LINE_INSTRUCTION:
			opcode := Opcode{LineNo: lineno, Ip: asm.currentIp(), Text: text, Instruction: line.Instruction}
			asm.Opcode = append(asm.Opcode, opcode)
		}
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
		Labels:  maps.Clone(asm.Label),
	}

	return
}

// Parse reads an input stream and assembles it into a Program.
//
// err is only set when the input cannot be read.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, diags []*ErrSyntax, err error) {
	var source []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		source = append(source, scanner.Text())
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog, diags = asm.Assemble(source)

	return
}

// define adds a label that Classify has already checked is not a duplicate.
func (asm *Assembler) define(table LabelTable, name string, ip int) {
	err := table.Define(name, ip)
	if err != nil {
		glog.Fatalf("Unable to define label '%s' at %d: %v", name, ip, err)
	}
}

// currentIp gets the index of the next instruction.
func (asm *Assembler) currentIp() int {
	return len(asm.Opcode)
}
