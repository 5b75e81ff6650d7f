package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ezrec/leds/config"
	"github.com/ezrec/leds/display"
	"github.com/ezrec/leds/emulator"
)

var ErrNoPrograms = errors.New(f("no programs to run"))

func newRunCmd() *cobra.Command {
	var configPath string
	var maxSteps int
	var delay time.Duration
	var animate bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run [file...]",
		Short: "Assemble and run LED programs",
		Long: `Run assembles each program and runs it, showing the LEDs after every
'out (0),a'. Lines that do not assemble are reported and skipped, and the
rest of the program still runs.

Programs come from the arguments, or from the 'programs' list of the
configuration file. Use '-' to read a program from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg := config.Default()
			if len(configPath) != 0 {
				cfg, err = config.Load(configPath)
				if err != nil {
					return
				}
			}

			flags := cmd.Flags()
			if flags.Changed("max-steps") {
				cfg.MaxSteps = maxSteps
			}
			if flags.Changed("delay") {
				cfg.FrameDelay = delay
			}
			if flags.Changed("animate") {
				cfg.Animate = animate
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if len(args) != 0 {
				cfg.Programs = args
			}

			if len(cfg.Programs) == 0 {
				err = ErrNoPrograms
				return
			}

			var failed bool
			for _, name := range cfg.Programs {
				prog, diags, err := assembleFile(name, cmd.InOrStdin(), cmd.ErrOrStderr(), cfg.Verbose)
				if err != nil {
					return err
				}
				if len(diags) != 0 {
					failed = true
				}

				out := cmd.OutOrStdout()
				var disp display.Display = &display.Tape{Output: out}
				if cfg.Animate {
					disp = display.NewTerminal(out, cfg.FrameDelay)
				}

				emu := emulator.NewEmulator()
				emu.Verbose = cfg.Verbose
				emu.Program = prog
				emu.Display = disp
				emu.MaxSteps = cfg.MaxSteps
				emu.Reset()

				err = finishDisplay(disp, emu.Run(cmd.Context()))
				if err != nil {
					return fmt.Errorf("%v: %w", name, err)
				}
			}

			if failed {
				err = ErrDiagnostics
			}

			return
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Starlark configuration file")
	flags.IntVar(&maxSteps, "max-steps", config.DEFAULT_MAX_STEPS, "instructions allowed per program, 0 for no limit")
	flags.DurationVar(&delay, "delay", config.DEFAULT_FRAME_DELAY, "pause between animated frames")
	flags.BoolVar(&animate, "animate", true, "redraw the LEDs in place on a terminal")
	flags.BoolVar(&verbose, "verbose", false, "log assembler and CPU activity")

	return cmd
}

// finisher is a display that must be told when output is complete.
type finisher interface {
	Finish() error
}

// finishDisplay finishes disp, if it needs finishing. The error of the run,
// err, takes precedence over that of the display.
func finishDisplay(disp display.Display, err error) error {
	fin, ok := disp.(finisher)
	if !ok {
		return err
	}

	ferr := fin.Finish()
	if err == nil {
		err = ferr
	}

	return err
}
