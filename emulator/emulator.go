// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"

	"github.com/golang/glog"

	"github.com/ezrec/leds/cpu"
	"github.com/ezrec/leds/display"
)

// Emulator state. CPU + program + LED display.
type Emulator struct {
	Verbose  bool            // If set, enables verbose logging.
	*cpu.Cpu                 // Reference to the CPU simulation.
	Program  *cpu.Program    // Reference to the currently running program.
	Display  display.Display // Receives the output of each out instruction.
	MaxSteps int             // Instructions allowed per run, 0 for no limit.
}

// NewEmulator creates a new emulator, capturing its display in memory.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
		Display: &display.Capture{},
	}

	return
}

// Reset the CPU and the display.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Display.Rewind()
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the source line number for the next instruction, or 0
// past the end of the program.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.Cpu.Ip)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if lineno != 0 && emu.MaxSteps > 0 && emu.Cpu.Ticks >= emu.MaxSteps {
		err = ErrStepLimit
		return
	}

	leds, out, done := emu.Cpu.Tick(emu.Program)
	if out {
		if emu.Verbose {
			glog.Infof("line %d: %v", lineno, leds)
		}
		err = emu.Display.Show(leds)
	}

	return
}

// Run ticks the emulator until the program ends, an error occurs, or the
// context is done.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}

// RunSource assembles and runs source lines, returning the LED patterns in
// output order and the diagnostics for lines that did not assemble.
//
// maxSteps bounds the instructions executed, 0 for no limit; err is set
// only when the bound is reached.
func RunSource(source []string, maxSteps int) (leds []string, diags []*cpu.ErrSyntax, err error) {
	asm := &cpu.Assembler{}
	prog, diags := asm.Assemble(source)

	capture := &display.Capture{}

	emu := NewEmulator()
	emu.Program = prog
	emu.Display = capture
	emu.MaxSteps = maxSteps
	emu.Reset()

	err = emu.Run(context.Background())
	leds = capture.Patterns

	return
}
