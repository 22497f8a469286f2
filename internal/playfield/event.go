package playfield

import (
	"time"

	"git.lost.host/meutraa/eotc/internal/anim"
)

type EventKind uint8

const (
	Spawned EventKind = iota
	Judged
	Armed
	Expired
)

func (k EventKind) String() string {
	switch k {
	case Spawned:
		return "spawned"
	case Judged:
		return "judged"
	case Armed:
		return "armed"
	case Expired:
		return "expired"
	}
	return "unknown"
}

type Event struct {
	Kind     EventKind
	Time     time.Duration
	Drawable *DrawableObject
	Sequence anim.Sequence // Set for Spawned and Armed

	// Armed only: when the object will be disposed, if it has an exit
	Expires  time.Duration
	Expiring bool
}
