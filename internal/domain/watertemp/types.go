package watertemp

import "time"

// Classification is the discrete condition of the water temperature. The
// string values are persisted as-is in the singleton state row.
type Classification string

const (
	ClassNormal Classification = "NORMAL"
	ClassLow    Classification = "LOW"
	ClassHigh   Classification = "HIGH"
)

func (c Classification) String() string {
	return string(c)
}

func (c Classification) IsValid() bool {
	switch c {
	case ClassNormal, ClassLow, ClassHigh:
		return true
	default:
		return false
	}
}

// Thresholds bound the acceptable temperature range in degrees Celsius.
type Thresholds struct {
	Min float64
	Max float64
}

// Reading is one sensor sample.
type Reading struct {
	Timestamp time.Time
	Value     float64
}

// State is the monitor's last persisted classification.
type State struct {
	ID        int64
	Current   Classification
	LastTemp  float64
	LastCheck time.Time
}
