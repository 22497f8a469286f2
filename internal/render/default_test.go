package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/eotc/internal/anim"
	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/playfield"
	"git.lost.host/meutraa/eotc/internal/score"
)

func judged(result game.Result) playfield.Event {
	obj := &game.HitObject{ID: 3, Kind: game.KindFruit, StartTime: 2 * time.Second, X: 0.5}
	return playfield.Event{
		Kind: playfield.Judged,
		Time: 2 * time.Second,
		Drawable: &playfield.DrawableObject{
			Object:    obj,
			Accent:    color.RGBA{1, 2, 3, 255},
			Judged:    true,
			Judgement: game.Judgement{ObjectID: 3, Result: result, Time: 2 * time.Second},
		},
	}
}

func TestJudgementLine(t *testing.T) {
	var out bytes.Buffer
	r := DefaultRenderer{Out: &out}
	r.Event(judged(game.Miss))
	if err := r.Flush(); nil != err {
		t.Fatal(err)
	}
	expected := "⬤ 00:02.000  #3    fruit  x=0.500  Miss\n"
	if out.String() != expected {
		t.Logf("     Got %q", out.String())
		t.Logf("Expected %q", expected)
		t.Fail()
	}
}

func TestJudgementLineShowsLength(t *testing.T) {
	ev := judged(game.Perfect)
	ev.Drawable.Object.Kind = game.KindJuiceStream
	ev.Drawable.Object.EndTime = 2500 * time.Millisecond

	var out bytes.Buffer
	r := DefaultRenderer{Out: &out}
	r.Event(ev)
	r.Flush()
	expected := "⬤ 00:02.000  #3    juice  x=0.500  Perfect  500ms long\n"
	if out.String() != expected {
		t.Logf("     Got %q", out.String())
		t.Logf("Expected %q", expected)
		t.Fail()
	}
}

func TestColorUsesAccent(t *testing.T) {
	var out bytes.Buffer
	r := DefaultRenderer{Out: &out, Color: true}
	r.Event(judged(game.Perfect))
	r.Flush()
	if !strings.HasPrefix(out.String(), "\033[38;2;1;2;3m⬤\033[0m") {
		t.Errorf("accent missing in %q", out.String())
	}
}

func TestVerboseOps(t *testing.T) {
	ev := judged(game.Miss)
	ev.Kind = playfield.Armed
	ev.Sequence = anim.Sequence{
		Ops:       []anim.Op{{Time: 2 * time.Second, Kind: anim.Expire}},
		Cancelled: []anim.Op{{Time: time.Second, Kind: anim.Expire}},
	}

	var out bytes.Buffer
	quiet := DefaultRenderer{Out: &out}
	quiet.Event(ev)
	quiet.Flush()
	if out.Len() != 0 {
		t.Error("ops printed while quiet", out.String())
	}

	loud := DefaultRenderer{Out: &out, Verbose: true}
	loud.Event(ev)
	loud.Flush()
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "cancel") {
		t.Error("unexpected op lines", lines)
	}
}

func TestVerboseExpiry(t *testing.T) {
	ev := judged(game.Miss)
	ev.Kind = playfield.Armed
	ev.Sequence = anim.Sequence{Ops: []anim.Op{{Time: 2250 * time.Millisecond, Kind: anim.Expire}}}
	ev.Expires, ev.Expiring = 2250*time.Millisecond, true

	var out bytes.Buffer
	r := DefaultRenderer{Out: &out, Verbose: true}
	r.Event(ev)
	r.Flush()
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || lines[1] != "   #3    expires at 00:02.250" {
		t.Error("unexpected lines", lines)
	}
}

func TestSummaryAndWidth(t *testing.T) {
	var out bytes.Buffer
	r := DefaultRenderer{Out: &out, Width: 10}
	r.Summary(score.Score{PerfectCount: 3, MissCount: 1, MaxCombo: 2, Accuracy: 0.75}, 2)
	r.History(nil, score.Score{}, 0)
	r.Flush()
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if len([]rune(line)) > 10 {
			t.Error("line wider than the terminal", line)
		}
	}
}
