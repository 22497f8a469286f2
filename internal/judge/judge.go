// Package judge decides whether a falling object was caught.
package judge

import (
	"time"

	"git.lost.host/meutraa/eotc/internal/game"
)

// PositionPredicate reports whether the plate was under the object when it
// was judged. It is owned by whoever moves the catcher.
type PositionPredicate func(obj *game.HitObject) bool

// Evaluate judges obj once offset, the signed distance from its start time,
// has reached zero. Nothing is produced without a predicate or before the
// start time, so callers can poll it every tick. It never remembers a
// result; callers must stop polling once it reports one.
func Evaluate(obj *game.HitObject, offset time.Duration, check PositionPredicate) (game.Result, bool) {
	if check == nil {
		return game.Miss, false
	}
	if offset < 0 {
		return game.Miss, false
	}
	if check(obj) {
		return game.Perfect, true
	}
	return game.Miss, true
}
