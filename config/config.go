// Package config loads run settings for the LED machine from a Starlark
// file.
//
//	max_steps = 10000
//	frame_delay_ms = 100
//	animate = True
//	verbose = False
//	programs = ["chase.txt", getenv("HOME") + "/bounce.txt"]
//
// Globals that are not settings are ignored.
package config

import (
	"math"
	"os"
	"time"

	"github.com/golang/glog"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	DEFAULT_MAX_STEPS   = 1_000_000
	DEFAULT_FRAME_DELAY = 250 * time.Millisecond
)

// Config holds the run settings.
type Config struct {
	MaxSteps   int           // Instructions allowed per program, 0 for no limit.
	FrameDelay time.Duration // Pause between animated frames.
	Animate    bool          // Redraw the LEDs in place on a terminal.
	Verbose    bool          // Log assembler and CPU activity.
	Programs   []string      // Program files, run in order.
}

// Default returns the settings used without a configuration file.
func Default() *Config {
	return &Config{
		MaxSteps:   DEFAULT_MAX_STEPS,
		FrameDelay: DEFAULT_FRAME_DELAY,
		Animate:    true,
	}
}

// getenv is the Starlark builtin getenv(name).
func getenv(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &name); err != nil {
		return nil, err
	}

	return starlark.String(os.Getenv(name)), nil
}

// Load reads a configuration file.
func Load(path string) (cfg *Config, err error) {
	return Parse(path, nil)
}

// Parse evaluates configuration source. If src is nil, filename is read.
func Parse(filename string, src any) (cfg *Config, err error) {
	thread := &starlark.Thread{
		Name: "config",
		Print: func(_ *starlark.Thread, msg string) {
			glog.Infof("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"getenv": starlark.NewBuiltin("getenv", getenv),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	cfg = Default()

	delay_ms := int(cfg.FrameDelay / time.Millisecond)

	for _, setter := range []func() error{
		func() error { return getInt(globals, "max_steps", &cfg.MaxSteps) },
		func() error { return getInt(globals, "frame_delay_ms", &delay_ms) },
		func() error { return getBool(globals, "animate", &cfg.Animate) },
		func() error { return getBool(globals, "verbose", &cfg.Verbose) },
		func() error { return getStrings(globals, "programs", &cfg.Programs) },
	} {
		err = setter()
		if err != nil {
			cfg = nil
			return
		}
	}

	cfg.FrameDelay = time.Duration(delay_ms) * time.Millisecond

	return
}

// getInt sets value from a non-negative integer global, if present.
func getInt(globals starlark.StringDict, name string, value *int) (err error) {
	v, ok := globals[name]
	if !ok {
		return
	}

	st_int, ok := v.(starlark.Int)
	if !ok {
		err = ErrConfigType{Name: name, Want: "int"}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > math.MaxInt32 {
		err = ErrConfigRange(name)
		return
	}

	*value = int(st_int64)
	return
}

// getBool sets value from a boolean global, if present.
func getBool(globals starlark.StringDict, name string, value *bool) (err error) {
	v, ok := globals[name]
	if !ok {
		return
	}

	st_bool, ok := v.(starlark.Bool)
	if !ok {
		err = ErrConfigType{Name: name, Want: "bool"}
		return
	}

	*value = bool(st_bool)
	return
}

// getStrings sets value from a list or tuple of strings, if present.
func getStrings(globals starlark.StringDict, name string, value *[]string) (err error) {
	v, ok := globals[name]
	if !ok {
		return
	}

	iterable, ok := v.(starlark.Iterable)
	if !ok {
		err = ErrConfigType{Name: name, Want: "list of strings"}
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var strs []string
	var item starlark.Value
	for iter.Next(&item) {
		str, ok := starlark.AsString(item)
		if !ok {
			err = ErrConfigType{Name: name, Want: "list of strings"}
			return
		}
		strs = append(strs, str)
	}

	*value = strs
	return
}
