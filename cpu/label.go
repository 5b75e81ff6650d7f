package cpu

import (
	"maps"
	"slices"
)

// Labels is the label lookup used when classifying a line.
type Labels interface {
	// Lookup returns the instruction index a jump to name resolves to.
	Lookup(name string) (index int, ok bool)
	// Declared is true if a declaration of name would be a duplicate.
	Declared(name string) bool
}

// LabelTable maps label names to the index of the instruction following
// their declaration.
type LabelTable map[string]int

var _ Labels = LabelTable(nil)

// Lookup returns the index of a label.
func (lt LabelTable) Lookup(name string) (index int, ok bool) {
	index, ok = lt[name]
	return
}

// Declared returns true if the label is in the table.
func (lt LabelTable) Declared(name string) bool {
	_, ok := lt[name]
	return ok
}

// Define adds a label. An existing label is never overwritten.
func (lt LabelTable) Define(name string, index int) (err error) {
	if lt.Declared(name) {
		err = ErrLabelDuplicate
		return
	}

	lt[name] = index
	return
}

// At returns the sorted names of all labels at an instruction index.
func (lt LabelTable) At(index int) (names []string) {
	for _, name := range slices.Sorted(maps.Keys(lt)) {
		if lt[name] == index {
			names = append(names, name)
		}
	}

	return
}
