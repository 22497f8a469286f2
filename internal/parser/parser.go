package parser

import (
	"io"

	"git.lost.host/meutraa/eotc/internal/game"
)

type Parser interface {
	Parse(file string) (*game.Beatmap, error)
	Decode(r io.Reader) (*game.Beatmap, error)
}

var _ Parser = (*DefaultParser)(nil)
