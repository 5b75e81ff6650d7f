package display

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestTape(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}

	assert.NoError(tape.Show("*......."))
	assert.NoError(tape.Show(".*......"))
	assert.Equal("*.......\n.*......\n", out.String())
	assert.Equal(2, tape.Count)

	tape.Rewind()
	assert.Equal(0, tape.Count)

	tape.Output = failWriter{}
	assert.Error(tape.Show("........"))
	assert.Equal(0, tape.Count)
}

func TestCapture(t *testing.T) {
	assert := assert.New(t)

	capture := &Capture{Capacity: 2}

	assert.NoError(capture.Show("a"))
	assert.NoError(capture.Show("b"))
	assert.ErrorIs(capture.Show("c"), ErrDisplayFull)
	assert.Equal([]string{"a", "b"}, capture.Patterns)

	capture.Rewind()
	assert.Empty(capture.Patterns)
	assert.NoError(capture.Show("d"))

	unlimited := &Capture{}
	for range 100 {
		assert.NoError(unlimited.Show("x"))
	}
	assert.Len(unlimited.Patterns, 100)
}

func TestTerminal_NotTty(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	term := NewTerminal(out, time.Hour)
	assert.False(term.Animated())

	assert.NoError(term.Show("****...."))
	assert.NoError(term.Show("...*****"))
	assert.NoError(term.Finish())
	assert.Equal("****....\n...*****\n", out.String())
}

func TestTerminal_Animated(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	term := NewTerminal(out, 10*time.Millisecond)

	var slept []time.Duration
	term.tty = true
	term.sleep = func(d time.Duration) { slept = append(slept, d) }

	assert.NoError(term.Show("*......."))
	assert.NoError(term.Show(".*......"))
	assert.NoError(term.Show("..*....."))
	assert.NoError(term.Finish())

	assert.Equal("\r*.......\r.*......\r..*.....\n", out.String())
	assert.Equal([]time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, slept)

	term.Rewind()
	out.Reset()
	assert.NoError(term.Finish())
	assert.Empty(out.String())
}

func TestIsTerminal_File(t *testing.T) {
	assert := assert.New(t)

	file, err := os.CreateTemp(t.TempDir(), "leds")
	assert.NoError(err)
	defer file.Close()

	assert.False(IsTerminal(file))
	assert.False(NewTerminal(file, 0).Animated())
}
