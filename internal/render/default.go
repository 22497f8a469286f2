package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"git.lost.host/meutraa/eotc/internal/clock"
	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/playfield"
	"git.lost.host/meutraa/eotc/internal/score"
)

var (
	red   = color.RGBA{236, 30, 0, 255}
	green = color.RGBA{0, 236, 128, 255}
	grey  = color.RGBA{106, 106, 106, 255}
)

const (
	fruitSym  = "⬤"
	bananaSym = "◗"
)

type DefaultRenderer struct {
	Out     io.Writer
	Color   bool // Emit truecolour escapes
	Width   int  // Zero for unlimited
	Verbose bool // Print every scheduled op

	buffer strings.Builder
}

func (r *DefaultRenderer) Header(b *game.Beatmap) {
	r.Fill(fmt.Sprintf("%v - %v [%v] (%v)", b.Metadata.Artist, b.Metadata.Title, b.Metadata.Version, b.Metadata.Creator))
	r.Fill(fmt.Sprintf("CS %.1f  AR %.1f  %v objects", b.Difficulty.CircleSize, b.Difficulty.ApproachRate, len(b.Objects)))
	r.rule()
}

func (r *DefaultRenderer) Event(ev playfield.Event) {
	d := ev.Drawable
	obj := d.Object
	switch ev.Kind {
	case playfield.Judged:
		sym := fruitSym
		if obj.Kind == game.KindBananaShower {
			sym = bananaSym
		}
		c := green
		if d.Judgement.Result == game.Miss {
			c = red
		}
		line := fmt.Sprintf(" %s  #%-4d %-6v x=%.3f  %v",
			clock.Stamp(ev.Time), obj.ID, obj.Kind, obj.X, d.Judgement.Result)
		if obj.HasEndTime() {
			line += fmt.Sprintf("  %v long", obj.Duration())
		}
		r.buffer.WriteString(r.color(d.Accent, sym))
		r.FillColor(c, line)
	case playfield.Spawned, playfield.Armed:
		if !r.Verbose {
			return
		}
		for _, op := range ev.Sequence.Cancelled {
			r.FillColor(grey, fmt.Sprintf("   #%-4d cancel %v", obj.ID, op))
		}
		for _, op := range ev.Sequence.Ops {
			r.FillColor(grey, fmt.Sprintf("   #%-4d %v", obj.ID, op))
		}
		if ev.Expiring {
			r.FillColor(grey, fmt.Sprintf("   #%-4d expires at %s", obj.ID, clock.Stamp(ev.Expires)))
		}
	case playfield.Expired:
		if r.Verbose {
			r.FillColor(grey, fmt.Sprintf(" %s  #%-4d expired", clock.Stamp(ev.Time), obj.ID))
		}
	}
}

func (r *DefaultRenderer) Summary(sc score.Score, plated int) {
	r.rule()
	r.FillColor(green, fmt.Sprintf("    Perfect:  %6v", sc.PerfectCount))
	r.FillColor(red, fmt.Sprintf("       Miss:  %6v", sc.MissCount))
	r.Fill(fmt.Sprintf("  Max combo:  %6v", sc.MaxCombo))
	r.Fill(fmt.Sprintf("     Plated:  %6v", plated))
	r.Fill(fmt.Sprintf("   Accuracy:  %6.2f%%", 100*sc.Accuracy))
}

func (r *DefaultRenderer) History(best *score.History, sc score.Score, runs int) {
	if nil == best {
		r.Fill("  No previous runs")
		return
	}
	r.Fill(fmt.Sprintf("  Best of %v: %6.2f%% (%vx) at %.2fx on %v",
		runs, 100*sc.Accuracy, sc.MaxCombo, best.Rate, best.Created.Format("2006-01-02 15:04")))
}

func (r *DefaultRenderer) rule() {
	w := r.Width
	if w <= 0 || w > 48 {
		w = 48
	}
	r.Fill(strings.Repeat("─", w))
}

func (r *DefaultRenderer) truncate(message string) string {
	if r.Width <= 0 {
		return message
	}
	runes := []rune(message)
	if len(runes) > r.Width {
		return string(runes[:r.Width])
	}
	return message
}

func (r *DefaultRenderer) color(c color.RGBA, message string) string {
	if !r.Color {
		return message
	}
	var b strings.Builder
	b.WriteString("\033[38;2;")
	b.WriteString(strconv.FormatInt(int64(c.R), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.G), 10))
	b.WriteString(";")
	b.WriteString(strconv.FormatInt(int64(c.B), 10))
	b.WriteString("m")
	b.WriteString(message)
	b.WriteString("\033[0m")
	return b.String()
}

func (r *DefaultRenderer) Fill(message string) {
	r.buffer.WriteString(r.truncate(message))
	r.buffer.WriteString("\n")
}

func (r *DefaultRenderer) FillColor(c color.RGBA, message string) {
	r.buffer.WriteString(r.color(c, r.truncate(message)))
	r.buffer.WriteString("\n")
}

func (r *DefaultRenderer) Flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}
