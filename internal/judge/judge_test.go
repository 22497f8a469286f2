package judge

import (
	"testing"
	"time"

	"git.lost.host/meutraa/eotc/internal/game"
)

var (
	always PositionPredicate = func(*game.HitObject) bool { return true }
	never  PositionPredicate = func(*game.HitObject) bool { return false }
)

type evaluateTest struct {
	Offset time.Duration
	Check  PositionPredicate
	Result game.Result
	Ok     bool
}

var evaluateTests = []evaluateTest{
	{Offset: -time.Second, Check: nil, Ok: false},
	{Offset: 0, Check: nil, Ok: false},
	{Offset: time.Hour, Check: nil, Ok: false},
	{Offset: -time.Millisecond, Check: always, Ok: false},
	{Offset: -time.Nanosecond, Check: never, Ok: false},
	{Offset: 0, Check: always, Result: game.Perfect, Ok: true},
	{Offset: 0, Check: never, Result: game.Miss, Ok: true},
	{Offset: 16 * time.Millisecond, Check: always, Result: game.Perfect, Ok: true},
	{Offset: 16 * time.Millisecond, Check: never, Result: game.Miss, Ok: true},
}

func TestEvaluate(t *testing.T) {
	obj := &game.HitObject{ID: 1, StartTime: 5 * time.Second, X: 0.5}
	for _, test := range evaluateTests {
		result, ok := Evaluate(obj, test.Offset, test.Check)
		if ok != test.Ok || (ok && result != test.Result) {
			t.Log("  Offset:", test.Offset)
			t.Log("Expected:", test.Result, test.Ok)
			t.Log("     Got:", result, ok)
			t.Fail()
		}
	}
}

func TestEvaluateWithoutPredicateNeverJudges(t *testing.T) {
	obj := &game.HitObject{ID: 1, StartTime: time.Second}
	for offset := -2 * time.Second; offset < 2*time.Second; offset += 7 * time.Millisecond {
		if _, ok := Evaluate(obj, offset, nil); ok {
			t.Fatalf("judged at offset %v without a predicate", offset)
		}
	}
}

func TestEvaluatePassesObjectToPredicate(t *testing.T) {
	obj := &game.HitObject{ID: 7, StartTime: time.Second, X: 0.25}
	var seen *game.HitObject
	_, ok := Evaluate(obj, 0, func(o *game.HitObject) bool {
		seen = o
		return o.X < 0.5
	})
	if !ok || seen != obj {
		t.Errorf("predicate saw %v, want %v", seen, obj)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	obj := &game.HitObject{ID: 1, StartTime: time.Second, X: 0.4}
	check := func(o *game.HitObject) bool { return o.X > 0.3 }
	first, _ := Evaluate(obj, time.Millisecond, check)
	for i := 0; i < 100; i++ {
		if r, _ := Evaluate(obj, time.Millisecond, check); r != first {
			t.Fatalf("result changed from %v to %v", first, r)
		}
	}
}
