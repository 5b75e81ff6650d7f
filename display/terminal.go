package display

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Terminal animates the LEDs in place on a terminal, pausing between
// frames. On anything that is not a terminal it writes one line per pattern.
type Terminal struct {
	Output io.Writer
	Delay  time.Duration // Pause before each frame after the first.

	tty    bool
	frames int
	sleep  func(time.Duration)
}

var _ Display = (*Terminal)(nil)

// NewTerminal creates a Terminal display on output.
func NewTerminal(output io.Writer, delay time.Duration) (term *Terminal) {
	term = &Terminal{
		Output: output,
		Delay:  delay,
		sleep:  time.Sleep,
	}

	if file, ok := output.(*os.File); ok {
		term.tty = IsTerminal(file)
	}

	return
}

// Animated returns true if frames are redrawn in place.
func (term *Terminal) Animated() bool {
	return term.tty
}

// Rewind starts a new animation.
func (term *Terminal) Rewind() {
	term.frames = 0
}

// Show draws a frame.
func (term *Terminal) Show(leds string) (err error) {
	if !term.tty {
		_, err = fmt.Fprintln(term.Output, leds)
		return
	}

	if term.frames > 0 && term.Delay > 0 {
		term.sleep(term.Delay)
	}

	_, err = fmt.Fprintf(term.Output, "\r%v", leds)
	if err != nil {
		return
	}

	term.frames++
	return
}

// Finish ends the animation, leaving the last frame on screen.
func (term *Terminal) Finish() (err error) {
	if term.tty && term.frames > 0 {
		_, err = fmt.Fprintln(term.Output)
	}

	return
}
