package anim

import (
	"sort"
	"time"
)

// Visual is what a renderer needs to draw an object at one instant.
type Visual struct {
	Alpha    float64
	Rotation float64
	Expired  bool
}

// Resolve plays ops up to t on top of base. A later op on the same
// property takes over from wherever the earlier one had got to.
func Resolve(ops []Op, t time.Duration, base Visual) Visual {
	sorted := make([]Op, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	var alpha, rotation []Op
	v := base
	for _, op := range sorted {
		switch op.Kind {
		case FadeIn, FadeOut:
			alpha = append(alpha, op)
		case RotateTo:
			rotation = append(rotation, op)
		case Expire:
			if t >= op.Time {
				v.Expired = true
			}
		}
	}
	v.Alpha = resolveProperty(alpha, t, base.Alpha)
	v.Rotation = resolveProperty(rotation, t, base.Rotation)
	return v
}

func resolveProperty(ops []Op, t time.Duration, base float64) float64 {
	v := base
	for i, op := range ops {
		if t < op.Time {
			break
		}
		at := t
		if i+1 < len(ops) && ops[i+1].Time <= t {
			at = ops[i+1].Time
		}
		v = v + (op.Target-v)*op.Easing.apply(progress(op, at))
	}
	return v
}

func progress(op Op, t time.Duration) float64 {
	if op.Duration <= 0 || t >= op.End() {
		return 1
	}
	if t <= op.Time {
		return 0
	}
	return float64(t-op.Time) / float64(op.Duration)
}

// Track holds the live ops of one object.
type Track struct {
	ops []Op
}

// Apply removes whatever seq cancelled and adds what it emitted.
func (tr *Track) Apply(seq Sequence) {
	for _, c := range seq.Cancelled {
		for i, op := range tr.ops {
			if op == c {
				tr.ops = append(tr.ops[:i], tr.ops[i+1:]...)
				break
			}
		}
	}
	tr.ops = append(tr.ops, seq.Ops...)
}

func (tr *Track) Ops() []Op {
	return tr.ops
}

// ExpireTime is when the object may be disposed, if it has been armed.
func (tr *Track) ExpireTime() (time.Duration, bool) {
	for _, op := range tr.ops {
		if op.Kind == Expire {
			return op.Time, true
		}
	}
	return 0, false
}
