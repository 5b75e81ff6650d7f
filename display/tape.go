package display

import (
	"io"
)

// Tape writes each LED pattern to an io.Writer as a line of text.
type Tape struct {
	Output io.Writer
	Count  int // Patterns written since rewind.
}

var _ Display = (*Tape)(nil)

// Rewind is not possible on a tape; only the count is reset.
func (tc *Tape) Rewind() {
	tc.Count = 0
}

// Show writes the pattern followed by a newline.
func (tc *Tape) Show(leds string) (err error) {
	_, err = io.WriteString(tc.Output, leds+"\n")
	if err != nil {
		return
	}

	tc.Count++
	return
}
