package display

// Capture keeps LED patterns in memory.
type Capture struct {
	Capacity int      // Maximum number of patterns kept, 0 for no limit.
	Patterns []string // Patterns shown since rewind.
}

var _ Display = (*Capture)(nil)

// Rewind discards the captured patterns.
func (cc *Capture) Rewind() {
	cc.Patterns = nil
}

// Show appends the pattern, or fails if the capture is at capacity.
func (cc *Capture) Show(leds string) (err error) {
	if cc.Capacity > 0 && len(cc.Patterns) >= cc.Capacity {
		err = ErrDisplayFull
		return
	}

	cc.Patterns = append(cc.Patterns, leds)
	return
}
