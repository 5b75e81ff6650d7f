package emulator

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/leds/cpu"
	"github.com/ezrec/leds/display"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(0, emu.Program.Len())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func doRun(emu *Emulator, program []string, t *testing.T) (output string) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, diags := asm.Assemble(program)
	assert.Empty(diags)
	emu.Program = prog

	tape_output := &bytes.Buffer{}
	emu.Display = &display.Tape{Output: tape_output}
	emu.Reset()

	var done bool
	for !done {
		var err error
		line := emu.LineNo()
		if line != 0 {
			assert.Equal(strings.TrimSpace(program[line-1]), strings.TrimSpace(emu.Program.Debug(emu.Cpu.Ip).Text))
		}
		done, err = emu.Tick()
		assert.NoError(err)
		if err != nil {
			t.Log(emu.Cpu.String())
			t.Fatalf("%v", err)
		}
	}

	output = tape_output.String()
	return
}

func TestEmulatorScenario(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"ld a,128",
		"ld b,3",
		"loop:",
		"out (0),a",
		"rrca",
		"djnz loop",
	}

	output := doRun(NewEmulator(), program, t)
	assert.Equal("*.......\n.*......\n..*.....\n", output)
}

func TestEmulatorPrograms(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		output  []string
	}){
		{"single", []string{"ld a,5", "out (0),a"}, []string{".....*.*"}},
		{"empty", []string{}, nil},
		{"no_out", []string{"ld a,1", "rlca"}, nil},
		{"bounce", []string{
			"ld b,3",
			"ld a,1",
			"left:",
			"out (0),a",
			"rlca",
			"djnz left",
			"ld b,3",
			"right:",
			"out (0),a",
			"rrca",
			"djnz right",
		}, []string{
			".......*", "......*.", ".....*..",
			"....*...", ".....*..", "......*.",
		}},
		{"nested", []string{
			"ld a,1",
			"ld b,2",
			"outer:",
			"out (0),a",
			"rlca",
			"djnz outer",
			"ld b,2",
			"inner:",
			"rrca",
			"djnz inner",
			"out (0),a",
		}, []string{".......*", "......*.", ".......*"}},
	}

	for _, entry := range table {
		leds, diags, err := RunSource(entry.program, 1000)
		assert.NoError(err, entry.name)
		assert.Empty(diags, entry.name)
		assert.Equal(entry.output, leds, entry.name)
	}
}

func TestEmulatorStepLimit(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"ld a,1",
		"forever:",
		"ld b,2",
		"out (0),a",
		"rlca",
		"djnz forever",
	}

	leds, diags, err := RunSource(program, 20)
	assert.Empty(diags)
	assert.ErrorIs(err, ErrStepLimit)

	var rterr *ErrRuntime
	assert.True(errors.As(err, &rterr))
	assert.NotZero(rterr.LineNo)

	// 1 + 4 per loop, out on the 2nd instruction of each loop.
	assert.Len(leds, 5)
}

func TestEmulatorStepLimitExact(t *testing.T) {
	assert := assert.New(t)

	// A program that fits its budget exactly completes.
	leds, _, err := RunSource([]string{"ld a,3", "out (0),a"}, 2)
	assert.NoError(err)
	assert.Equal([]string{"......**"}, leds)
}

func TestEmulatorDiagnostics(t *testing.T) {
	assert := assert.New(t)

	leds, diags, err := RunSource([]string{
		"ld a,255",
		"djnz missing",
		"out (0),a",
		"ld a,256",
		"out (0),a",
	}, 0)
	assert.NoError(err)
	assert.Len(diags, 2)
	assert.Equal(2, diags[0].LineNo)
	assert.Equal(4, diags[1].LineNo)
	assert.Equal([]string{"********", "********"}, leds)
}

func TestEmulatorDisplayError(t *testing.T) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, _ := asm.Assemble([]string{"ld a,1", "out (0),a", "out (0),a"})

	emu := NewEmulator()
	emu.Program = prog
	emu.Display = &display.Capture{Capacity: 1}
	emu.Reset()

	err := emu.Run(context.Background())
	assert.ErrorIs(err, display.ErrDisplayFull)

	var rterr *ErrRuntime
	assert.True(errors.As(err, &rterr))
	assert.Equal(3, rterr.LineNo)
	assert.Contains(rterr.Error(), "line 3")
}

func TestEmulatorCancel(t *testing.T) {
	assert := assert.New(t)

	asm := &cpu.Assembler{}
	prog, _ := asm.Assemble([]string{"top:", "ld b,2", "djnz top"})

	emu := NewEmulator()
	emu.Program = prog
	emu.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emu.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, emu.Ticks())
}
