package playfield

import (
	"image/color"

	"git.lost.host/meutraa/eotc/internal/anim"
	"git.lost.host/meutraa/eotc/internal/game"
)

// DrawableObject is the live, visual side of a hit object.
type DrawableObject struct {
	Object    *game.HitObject
	Rotation  float64 // Resting rotation in degrees
	Accent    color.RGBA
	Judged    bool // Set exactly once
	Judgement game.Judgement
	Visual    anim.Visual

	track      anim.Track
	unanimated bool
}

func (d *DrawableObject) Ops() []anim.Op {
	return d.track.Ops()
}

// restingRotation spreads objects over [-20, 20) degrees so that a missed
// object visibly spins.
func restingRotation(obj *game.HitObject) float64 {
	return float64((obj.ID*37)%40 - 20)
}
