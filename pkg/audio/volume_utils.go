package audio

import "math"

// volumeToPower converts linear volume (0.0 to 1.0) to beep's logarithmic
// power scale with Base 2. Values at or below 0.01 are treated as silent.
func volumeToPower(vol float64) float64 {
	if vol <= 0.01 {
		return -10
	}
	return math.Log2(vol)
}
