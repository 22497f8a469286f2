package testdata

import (
	"strings"

	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/parser"
)

// Beatmap is a small catch beatmap with one object of every kind.
const Beatmap = `osu file format v14

[General]
AudioFilename: audio.mp3
Mode: 2

[Metadata]
Title:Test Song
Artist:Nobody
Creator:meutraa
Version:Salad

[Difficulty]
HPDrainRate:5
CircleSize:4
OverallDifficulty:7
ApproachRate:8
SliderMultiplier:1.4
SliderTickRate:1

[TimingPoints]
0,500,4,2,0,100,1,0
4000,-50,4,2,0,100,0,0

[HitObjects]
256,192,1000,5,0,0:0:0:0:
64,192,1500,1,0,0:0:0:0:
448,192,2000,6,0,B|480:192,1,140
256,192,3000,12,0,4000,0:0:0:0:
128,192,4500,38,0,L|200:192,2,70
`

func GetBeatmap() (*game.Beatmap, error) {
	var p parser.DefaultParser
	return p.Decode(strings.NewReader(Beatmap))
}
