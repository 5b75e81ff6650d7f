package cpu

import (
	"strconv"
	"strings"
	"unicode"
)

// LineKind is the classification of a source line.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LINE_EMPTY       = LineKind(0) // empty
	LINE_INSTRUCTION = LineKind(1) // instruction
	LINE_LABEL       = LineKind(2) // label
	LINE_ERROR       = LineKind(3) // error
)

// Line is the result of classifying one line of source text.
type Line struct {
	Kind        LineKind
	Instruction Instruction // Valid for LINE_INSTRUCTION.
	Label       string      // Declared label, or the djnz target name.
	Err         error       // Valid for LINE_ERROR.
}

// exactMap holds the instructions without operands.
var exactMap = map[string]Instruction{
	"rlca":      MakeRlca(),
	"rrca":      MakeRrca(),
	"out (0),a": MakeOut(),
}

// Classify parses a single line of source text.
//
// Jump targets are resolved through labels, which must already know every
// label the program declares. A label declaration is rejected if labels
// reports it as declared.
func Classify(text string, labels Labels) (line Line) {
	text = strings.TrimSpace(text)

	if ins, ok := exactMap[text]; ok {
		line = Line{Kind: LINE_INSTRUCTION, Instruction: ins}
		return
	}

	if len(text) == 0 {
		line = Line{Kind: LINE_EMPTY}
		return
	}

	if operand, ok := strings.CutPrefix(text, "ld a,"); ok {
		value, err := parseByte(operand)
		if err != nil {
			line = Line{Kind: LINE_ERROR, Err: err}
			return
		}
		line = Line{Kind: LINE_INSTRUCTION, Instruction: MakeLoadA(value)}
		return
	}

	if operand, ok := strings.CutPrefix(text, "ld b,"); ok {
		value, err := parseByte(operand)
		if err != nil {
			line = Line{Kind: LINE_ERROR, Err: err}
			return
		}
		line = Line{Kind: LINE_INSTRUCTION, Instruction: MakeLoadB(value)}
		return
	}

	if name, ok := strings.CutPrefix(text, "djnz "); ok {
		name = strings.TrimSpace(name)
		index, ok := labels.Lookup(name)
		if !ok {
			line = Line{Kind: LINE_ERROR, Label: name, Err: ErrLabelMissing(name)}
			return
		}
		line = Line{Kind: LINE_INSTRUCTION, Instruction: MakeDjnz(index), Label: name}
		return
	}

	name, ok := strings.CutSuffix(text, ":")
	switch {
	case !ok:
		line = Line{Kind: LINE_ERROR, Err: ErrInstructionInvalid}
	case !isLabelName(name):
		line = Line{Kind: LINE_ERROR, Err: ErrLabelSyntax}
	case labels.Declared(name):
		line = Line{Kind: LINE_ERROR, Label: name, Err: ErrLabelDuplicate}
	default:
		line = Line{Kind: LINE_LABEL, Label: name}
	}

	return
}

// parseByte parses a decimal load operand. A single blank is allowed
// between the comma and the digits.
func parseByte(operand string) (value uint8, err error) {
	digits := operand
	if len(digits) > 0 && (digits[0] == ' ' || digits[0] == '\t') {
		digits = digits[1:]
	}

	v64, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		err = ErrParseNumber(operand)
		return
	}

	value = uint8(v64)
	return
}

// isLabelName is true for a non-empty run of letters, digits and '_'.
func isLabelName(name string) bool {
	if len(name) == 0 {
		return false
	}

	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
