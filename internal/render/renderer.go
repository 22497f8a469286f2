package render

import (
	"image/color"

	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/playfield"
	"git.lost.host/meutraa/eotc/internal/score"
)

type Renderer interface {
	Header(beatmap *game.Beatmap)
	Event(ev playfield.Event)
	Summary(sc score.Score, plated int)
	History(best *score.History, sc score.Score, runs int)
	Fill(message string)
	FillColor(c color.RGBA, message string)
	Flush() error
}

var _ Renderer = (*DefaultRenderer)(nil)
