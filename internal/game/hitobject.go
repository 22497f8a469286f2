package game

import (
	"time"
)

type Kind uint8

const (
	KindFruit Kind = iota
	KindJuiceStream
	KindBananaShower
)

func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "fruit"
	case KindJuiceStream:
		return "juice"
	case KindBananaShower:
		return "banana"
	}
	return "unknown"
}

// HitObject is a single catchable item. It is never modified once the
// beatmap has been parsed.
type HitObject struct {
	ID         int
	Kind       Kind
	StartTime  time.Duration // The time the object reaches the plate
	EndTime    time.Duration // Zero unless the object has a duration
	X          float64       // Horizontal position, normalised to [0, 1]
	Scale      float64
	ComboIndex int
	NewCombo   bool
}

func (h *HitObject) HasEndTime() bool {
	return h.EndTime > h.StartTime
}

func (h *HitObject) Duration() time.Duration {
	if !h.HasEndTime() {
		return 0
	}
	return h.EndTime - h.StartTime
}

// End is the time exit animations start from.
func (h *HitObject) End() time.Duration {
	if h.HasEndTime() {
		return h.EndTime
	}
	return h.StartTime
}

// CanBePlated reports whether the object can land on the catcher plate.
func (h *HitObject) CanBePlated() bool {
	return h.Kind == KindFruit || h.Kind == KindJuiceStream
}

func (h *HitObject) StaysOnPlate() bool {
	return h.CanBePlated()
}
