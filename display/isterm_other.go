//go:build !linux && !darwin

package display

import (
	"os"
)

// IsTerminal always returns false, as terminal attributes are unavailable.
func IsTerminal(file *os.File) bool {
	return false
}
