// Package display provides the devices that present the LED patterns
// produced by the out instruction. It includes a line-per-pattern Tape, an
// in-memory Capture, and a Terminal that animates the LEDs in place.
package display

// Display receives the LED patterns of a running program.
type Display interface {
	// Rewind resets the display to its initial state.
	Rewind()
	// Show presents a single LED pattern.
	Show(leds string) error
}
