// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ezrec/leds/cpu"
	"github.com/ezrec/leds/translate"
)

var f = translate.From

var ErrDiagnostics = errors.New(f("program has errors"))

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "leds",
		Short: "Assembler and interpreter for the blinking LED machine",
		Long: `Leds assembles programs for a tiny machine whose accumulator drives a
row of eight LEDs, and runs them, showing the LEDs each time the program
executes 'out (0),a'.

Programs are text, one statement per line:

  ld a,<0-255>
  ld b,<0-255>
  out (0),a
  rlca
  rrca
  djnz <label>
  <label>:
`,
		SilenceUsage: true,
	}

	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	root.AddCommand(newRunCmd(), newAsmCmd())

	return root
}

// openSource opens a program file, or stdin for "-".
func openSource(name string, stdin io.Reader) (rc io.ReadCloser, err error) {
	if name == "-" {
		rc = io.NopCloser(stdin)
		return
	}

	rc, err = os.Open(name)
	return
}

// assembleFile assembles a program file, reporting its diagnostics to
// diag_out.
func assembleFile(name string, stdin io.Reader, diag_out io.Writer, verbose bool) (prog *cpu.Program, diags []*cpu.ErrSyntax, err error) {
	inf, err := openSource(name, stdin)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, diags, err = asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
		return
	}

	for _, diag := range diags {
		fmt.Fprintf(diag_out, "%v: %v\n", name, diag)
	}

	return
}

func main() {
	// glog complains if its flags are used before flag.Parse.
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
