package catcher

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"git.lost.host/meutraa/eotc/internal/game"
)

// Driver decides where the plate goes each tick.
type Driver interface {
	Update(c *Catcher, objects []*game.HitObject, now time.Duration, elapsed time.Duration)
}

// Autoplay chases the next object still to land, dashing when walking
// would arrive too late.
type Autoplay struct{}

func (Autoplay) Update(c *Catcher, objects []*game.HitObject, now time.Duration, elapsed time.Duration) {
	var next *game.HitObject
	for _, obj := range objects {
		if obj.StartTime >= now {
			next = obj
			break
		}
	}
	if next == nil {
		c.Dash = false
		return
	}
	remaining := float64(next.StartTime-now) / float64(time.Millisecond)
	c.Dash = math.Abs(next.X-c.X) > BaseSpeed*remaining
	c.MoveToward(next.X, elapsed)
}

// Idle never moves.
type Idle struct{}

func (Idle) Update(*Catcher, []*game.HitObject, time.Duration, time.Duration) {}

// Random wanders between seeded targets.
type Random struct {
	rng    *rand.Rand
	target float64
}

func NewRandom(seed int64) *Random {
	rng := rand.New(rand.NewSource(seed))
	return &Random{rng: rng, target: rng.Float64()}
}

func (r *Random) Update(c *Catcher, _ []*game.HitObject, _ time.Duration, elapsed time.Duration) {
	if math.Abs(c.X-r.target) < 1e-9 {
		r.target = r.rng.Float64()
		c.Dash = r.rng.Intn(4) == 0
	}
	c.MoveToward(r.target, elapsed)
}

func NewDriver(name string, seed int64) (Driver, error) {
	switch name {
	case "autoplay":
		return Autoplay{}, nil
	case "idle":
		return Idle{}, nil
	case "random":
		return NewRandom(seed), nil
	}
	return nil, fmt.Errorf("catcher: unknown driver %q", name)
}
