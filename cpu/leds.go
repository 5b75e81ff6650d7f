package cpu

import (
	"math/bits"
	"strings"
)

const (
	LED_COUNT = 8   // LEDs driven by the accumulator.
	LED_ON    = '*' // Lit LED.
	LED_OFF   = '.' // Dark LED.
)

// Leds renders a value as the LED row, most significant bit first.
func Leds(value uint8) string {
	var sb strings.Builder
	sb.Grow(LED_COUNT)

	for bit := LED_COUNT - 1; bit >= 0; bit-- {
		if value&(1<<bit) != 0 {
			sb.WriteByte(LED_ON)
		} else {
			sb.WriteByte(LED_OFF)
		}
	}

	return sb.String()
}

// RotateLeft rotates the bits of value left by n, wrapping bit 7 into bit 0.
func RotateLeft(value uint8, n int) uint8 {
	return bits.RotateLeft8(value, n)
}

// RotateRight rotates the bits of value right by n, wrapping bit 0 into bit 7.
func RotateRight(value uint8, n int) uint8 {
	return bits.RotateLeft8(value, -n)
}
