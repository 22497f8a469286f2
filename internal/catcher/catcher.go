// Package catcher moves the plate and answers whether it was under an
// object when that object was judged.
package catcher

import (
	"math"
	"time"

	"git.lost.host/meutraa/eotc/internal/game"
)

// Normalised distance the plate covers per millisecond, 1px/ms walking.
const BaseSpeed = 1.0 / game.PlayfieldWidth

type Catcher struct {
	X     float64 // Centre of the plate, normalised
	Width float64
	Dash  bool
}

func New(d game.Difficulty) *Catcher {
	return &Catcher{X: 0.5, Width: d.CatcherWidth()}
}

func (c *Catcher) Speed() float64 {
	if c.Dash {
		return BaseSpeed * 2
	}
	return BaseSpeed
}

// MoveToward walks the plate toward x for elapsed, never overshooting.
func (c *Catcher) MoveToward(x float64, elapsed time.Duration) {
	step := c.Speed() * float64(elapsed) / float64(time.Millisecond)
	d := x - c.X
	if math.Abs(d) <= step {
		c.X = x
	} else if d > 0 {
		c.X += step
	} else {
		c.X -= step
	}
	c.X = math.Max(0, math.Min(1, c.X))
}

// CheckPosition is the position predicate handed to the judge.
func (c *Catcher) CheckPosition(obj *game.HitObject) bool {
	return math.Abs(obj.X-c.X) <= c.Width/2
}
