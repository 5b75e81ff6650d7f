//go:build linux || darwin

package display

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// IsTerminal returns true if file is a terminal.
func IsTerminal(file *os.File) bool {
	var attr unix.Termios

	return termios.Tcgetattr(file.Fd(), &attr) == nil
}
