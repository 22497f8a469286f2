package game

import (
	"time"
)

type TimingPoint struct {
	Time       time.Duration
	BeatLength float64 // Milliseconds per beat, negative for inherited points
	Inherited  bool
}

// SliderVelocity is the multiplier an inherited point applies.
func (t TimingPoint) SliderVelocity() float64 {
	if !t.Inherited || t.BeatLength >= 0 {
		return 1
	}
	return 100.0 / -t.BeatLength
}
