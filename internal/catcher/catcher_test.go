package catcher

import (
	"math"
	"testing"
	"time"

	"git.lost.host/meutraa/eotc/internal/game"
)

func TestMoveToward(t *testing.T) {
	c := &Catcher{X: 0.5}
	c.MoveToward(1, 64*time.Millisecond)
	if math.Abs(c.X-(0.5+64.0/512)) > 1e-9 {
		t.Error("walked to", c.X)
	}
	c.Dash = true
	c.MoveToward(0.5, time.Second)
	if c.X != 0.5 {
		t.Error("overshot to", c.X)
	}
}

var checkTests = []struct {
	Object   game.HitObject
	Expected bool
}{
	{game.HitObject{Kind: game.KindFruit, X: 0.5}, true},
	{game.HitObject{Kind: game.KindFruit, X: 0.55}, true},
	{game.HitObject{Kind: game.KindJuiceStream, X: 0.45}, true},
	{game.HitObject{Kind: game.KindFruit, X: 0.7}, false},
	{game.HitObject{Kind: game.KindBananaShower, X: 0.5}, true},
	{game.HitObject{Kind: game.KindBananaShower, X: 0.1}, false},
}

func TestCheckPosition(t *testing.T) {
	c := New(game.Difficulty{CircleSize: 5})
	for _, test := range checkTests {
		if c.CheckPosition(&test.Object) != test.Expected {
			t.Log("  Object", test.Object)
			t.Log("   Width", c.Width)
			t.Log("Expected", test.Expected)
			t.Fail()
		}
	}
}

func TestAutoplayReachesObject(t *testing.T) {
	objects := []*game.HitObject{{Kind: game.KindFruit, StartTime: time.Second, X: 0.9}}
	c := New(game.Difficulty{CircleSize: 5})
	var d Autoplay
	for now := time.Duration(0); now <= time.Second; now += time.Millisecond {
		d.Update(c, objects, now, time.Millisecond)
	}
	if !c.CheckPosition(objects[0]) {
		t.Error("autoplay missed, catcher at", c.X)
	}
}

func TestIdleStaysPut(t *testing.T) {
	c := &Catcher{X: 0.3}
	Idle{}.Update(c, nil, 0, time.Second)
	if c.X != 0.3 {
		t.Error("idle moved to", c.X)
	}
}

func TestRandomIsSeeded(t *testing.T) {
	p, q := NewRandom(42), NewRandom(42)
	cp, cq := &Catcher{X: 0.5}, &Catcher{X: 0.5}
	for i := 0; i < 5000; i++ {
		p.Update(cp, nil, 0, time.Millisecond)
		q.Update(cq, nil, 0, time.Millisecond)
	}
	if cp.X != cq.X {
		t.Error("same seed diverged", cp.X, cq.X)
	}
}

func TestNewDriver(t *testing.T) {
	for _, name := range []string{"autoplay", "idle", "random"} {
		if _, err := NewDriver(name, 1); nil != err {
			t.Error(name, err)
		}
	}
	if _, err := NewDriver("hands", 1); nil == err {
		t.Error("unknown driver accepted")
	}
}
