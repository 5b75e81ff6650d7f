package cpu

import (
	"fmt"

	"github.com/golang/glog"
)

// Cpu is the machine state for one run of a program.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ip    int   // Current instruction pointer.
	A     uint8 // Accumulator, shown on the LEDs.
	B     uint8 // Loop counter.
	Ticks int   // Instructions executed since reset.
}

// NewCpu creates a new CPU in the reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Reset clears the registers, the instruction pointer and the tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		glog.Infof("cpu: reset")
	}

	cpu.Ip = 0
	cpu.A = 0
	cpu.B = 0
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %04d\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %02X %v\n", "a", cpu.A, Leds(cpu.A))
	text += fmt.Sprintf("% 5s: %02X\n", "b", cpu.B)

	return
}

// Execute executes a single instruction, and advances the IP.
// If the instruction is an out, leds holds the rendered accumulator.
func (cpu *Cpu) Execute(ins Instruction) (leds string, out bool) {
	if cpu.Verbose {
		glog.Infof("%04d: %v", cpu.Ip, ins)
	}

	cpu.Ticks++
	next_ip := cpu.Ip + 1

	switch ins.Op {
	case OP_LOAD_A:
		cpu.A = ins.Value
	case OP_LOAD_B:
		cpu.B = ins.Value
	case OP_OUT:
		leds = Leds(cpu.A)
		out = true
	case OP_RLCA:
		cpu.A = RotateLeft(cpu.A, 1)
	case OP_RRCA:
		cpu.A = RotateRight(cpu.A, 1)
	case OP_DJNZ:
		if cpu.B > 0 {
			cpu.B--
		}
		if cpu.B > 0 {
			next_ip = ins.Target
		}
	}

	cpu.Ip = next_ip

	return
}

// Tick executes the instruction at the IP. done is set, and nothing is
// executed, once the IP is past the end of the program.
func (cpu *Cpu) Tick(prog *Program) (leds string, out bool, done bool) {
	ins, ok := prog.Fetch(cpu.Ip)
	if !ok {
		done = true
		return
	}

	leds, out = cpu.Execute(ins)

	return
}

// Run resets the CPU and runs the program to completion, returning the LED
// patterns in the order they were output.
//
// A program that loops forever never returns; callers that need a bound
// should Tick.
func (cpu *Cpu) Run(prog *Program) (patterns []string) {
	cpu.Reset()

	for {
		leds, out, done := cpu.Tick(prog)
		if done {
			return
		}
		if out {
			patterns = append(patterns, leds)
		}
	}
}
