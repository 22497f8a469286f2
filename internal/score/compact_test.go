package score

import (
	"testing"

	"git.lost.host/meutraa/eotc/internal/game"
)

type compactTest struct {
	Judgements []game.Judgement
	Compact    []JudgementsCompact
}

var compactTests = []compactTest{
	{[]game.Judgement{}, []JudgementsCompact{}},
	{
		[]game.Judgement{{ObjectID: 1, Result: game.Perfect}, {ObjectID: 2, Result: game.Miss}, {ObjectID: 3, Result: game.Perfect}},
		[]JudgementsCompact{
			{Result: game.Perfect, IDs: []int{1, 3}},
			{Result: game.Miss, IDs: []int{2}},
		},
	},
	{
		[]game.Judgement{{ObjectID: 1, Result: game.Perfect}, {ObjectID: 2, Result: game.Perfect}},
		[]JudgementsCompact{
			{Result: game.Perfect, IDs: []int{1, 2}},
		},
	},
}

func equalCompact(p, q []JudgementsCompact) bool {
	if len(p) != len(q) {
		return false
	}
	for i := 0; i < len(p); i++ {
		pi, qi := p[i], q[i]
		if pi.Result != qi.Result {
			return false
		}
		if len(pi.IDs) != len(qi.IDs) {
			return false
		}
		for j := 0; j < len(pi.IDs); j++ {
			if pi.IDs[j] != qi.IDs[j] {
				return false
			}
		}
	}
	return true
}

func equalJudgements(p, q []game.Judgement) bool {
	if len(p) != len(q) {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i].ObjectID != q[i].ObjectID || p[i].Result != q[i].Result {
			return false
		}
	}
	return true
}

func TestCompactJudgements(t *testing.T) {
	for _, test := range compactTests {
		out := compactJudgements(test.Judgements)
		if !equalCompact(out, test.Compact) {
			t.Log("out     ", out)
			t.Log("expected", test.Compact)
			t.Fail()
		}
	}
}

func TestUncompactJudgements(t *testing.T) {
	for _, test := range compactTests {
		out := uncompactJudgements(test.Compact)
		if !equalJudgements(out, test.Judgements) {
			t.Log("in      ", test.Compact)
			t.Log("expected", test.Judgements)
			t.Fail()
		}
	}
}
