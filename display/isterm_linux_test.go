//go:build linux

package display

import (
	"testing"

	"github.com/pkg/term/termios"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminal_Pty(t *testing.T) {
	assert := assert.New(t)

	ptm, pts, err := termios.Pty()
	if err != nil {
		t.Skipf("no pty: %v", err)
	}
	defer ptm.Close()
	defer pts.Close()

	assert.True(IsTerminal(pts))
	assert.True(NewTerminal(pts, 0).Animated())
}
