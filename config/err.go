package config

import (
	"github.com/ezrec/leds/translate"
)

var f = translate.From

// ErrConfigType is returned when a setting has the wrong Starlark type.
type ErrConfigType struct {
	Name string
	Want string
}

func (err ErrConfigType) Error() string {
	return f("%v: expected %v", err.Name, err.Want)
}

// ErrConfigRange is returned when a numeric setting is out of range.
type ErrConfigRange string

func (err ErrConfigRange) Error() string {
	return f("%v: out of range", string(err))
}
