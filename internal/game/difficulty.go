package game

import "math"

type Difficulty struct {
	Name              string
	CircleSize        float64
	ApproachRate      float64
	OverallDifficulty float64
	SliderMultiplier  float64
	SliderTickRate    float64
}

// Playfield width in osu!pixels, used to normalise positions.
const PlayfieldWidth = 512.0

// ObjectScale is the size multiplier applied to every object.
func (d Difficulty) ObjectScale() float64 {
	return (1.0 - 0.7*(d.CircleSize-5)/5) / 2
}

// CatcherWidth is the normalised catchable width of the plate.
func (d Difficulty) CatcherWidth() float64 {
	const catcherSize = 106.75
	const allowedCatchRange = 0.8
	scale := 1.0 - 0.7*(d.CircleSize-5)/5
	return math.Abs(catcherSize*scale*allowedCatchRange) / PlayfieldWidth
}
