package display

import (
	"errors"

	"github.com/ezrec/leds/translate"
)

var f = translate.From

var (
	// Display errors
	ErrDisplayFull = errors.New(f("display full"))
)
