package score

import (
	"time"

	"git.lost.host/meutraa/eotc/internal/game"
)

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the judgements of this run, returning its id
	Save(beatmap *game.Beatmap, judgements []game.Judgement, rate float64) (string, error)

	// Load up previous runs of the beatmap, newest first
	Load(beatmap *game.Beatmap) ([]History, error)

	Score(judgements []game.Judgement) Score
}

type History struct {
	ID         string
	Sum        string
	Rate       float64
	Created    time.Time
	Judgements []game.Judgement
}

type Score struct {
	PerfectCount uint64
	MissCount    uint64
	MaxCombo     uint64
	Accuracy     float64 // Between 0 and 1
}

var _ Scorer = (*DefaultScorer)(nil)
