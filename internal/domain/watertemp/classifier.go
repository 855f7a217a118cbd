// Package watertemp holds the pure classification logic for the water
// temperature monitor. It has no I/O; time and thresholds are parameters.
package watertemp

// Classify maps a reading onto the three-state classification.
func Classify(value float64, th Thresholds) Classification {
	switch {
	case value < th.Min:
		return ClassLow
	case value > th.Max:
		return ClassHigh
	default:
		return ClassNormal
	}
}

// ShouldNotify reports whether moving from prev to current is an edge that
// warrants a notification. Repeated identical classifications across polls
// stay silent so a standing incident does not alert every tick.
func ShouldNotify(prev, current Classification) bool {
	return prev != current
}
