package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/eotc/internal/game"
)

var (
	ErrInvalidHeader   = errors.New("parser: not an osu beatmap")
	ErrUnsupportedMode = errors.New("parser: beatmap mode cannot be caught")
)

// Hit object type bits
const (
	typeCircle   = 1 << 0
	typeSlider   = 1 << 1
	typeNewCombo = 1 << 2
	typeSpinner  = 1 << 3
	typeSkip     = 0x70 // three bits of combo colours to skip
)

// Modes that produce fruit: standard (converted) and catch
var catchableModes = map[int]bool{0: true, 2: true}

type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Beatmap, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	b, err := p.Decode(f)
	if nil != err {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return b, nil
}

func splitKeyValue(line string) (string, string) {
	k, v, _ := strings.Cut(line, ":")
	return strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v)
}

func (p *DefaultParser) Decode(r io.Reader) (*game.Beatmap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	header := ""
	for sc.Scan() {
		header = strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\uFEFF"))
		if header != "" {
			break
		}
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}
	if !strings.HasPrefix(strings.ToLower(header), "osu file format v") {
		return nil, ErrInvalidHeader
	}

	b := &game.Beatmap{
		Difficulty: game.Difficulty{CircleSize: 5, SliderMultiplier: 1.4, SliderTickRate: 1},
	}
	mode := 0
	seenAR := false
	objectLines := []string{}
	var section strings.Builder

	current := ""
	lineNumber := 1
	for sc.Scan() {
		lineNumber++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.ToLower(line)
			continue
		}

		switch current {
		case "[general]":
			k, v := splitKeyValue(line)
			if k == "mode" {
				m, err := strconv.Atoi(v)
				if nil != err {
					return nil, fmt.Errorf("line %d: mode: %w", lineNumber, err)
				}
				mode = m
			}
		case "[metadata]":
			k, v := splitKeyValue(line)
			switch k {
			case "title":
				b.Metadata.Title = v
			case "artist":
				b.Metadata.Artist = v
			case "creator":
				b.Metadata.Creator = v
			case "version":
				b.Metadata.Version = v
				b.Difficulty.Name = v
			}
		case "[difficulty]":
			k, v := splitKeyValue(line)
			f, err := strconv.ParseFloat(v, 64)
			if nil != err {
				return nil, fmt.Errorf("line %d: %s: %w", lineNumber, k, err)
			}
			switch k {
			case "circlesize":
				b.Difficulty.CircleSize = f
			case "overalldifficulty":
				b.Difficulty.OverallDifficulty = f
				if !seenAR {
					b.Difficulty.ApproachRate = f
				}
			case "approachrate":
				b.Difficulty.ApproachRate = f
				seenAR = true
			case "slidermultiplier":
				b.Difficulty.SliderMultiplier = f
			case "slidertickrate":
				b.Difficulty.SliderTickRate = f
			}
		case "[timingpoints]":
			tp, err := parseTimingPoint(line)
			if nil != err {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			b.TimingPoints = append(b.TimingPoints, tp)
		case "[hitobjects]":
			objectLines = append(objectLines, fmt.Sprintf("%d\x00%s", lineNumber, line))
			section.WriteString(line)
			section.WriteString("\n")
		}
	}
	if err := sc.Err(); nil != err {
		return nil, err
	}
	if !catchableModes[mode] {
		return nil, fmt.Errorf("%w: mode %d", ErrUnsupportedMode, mode)
	}

	sort.SliceStable(b.TimingPoints, func(i, j int) bool {
		return b.TimingPoints[i].Time < b.TimingPoints[j].Time
	})

	comboIndex := 0
	for i, ol := range objectLines {
		n, line, _ := strings.Cut(ol, "\x00")
		obj, flags, err := p.parseHitObject(b, line)
		if nil != err {
			return nil, fmt.Errorf("line %s: %w", n, err)
		}
		newCombo := flags&typeNewCombo != 0
		if i == 0 {
			newCombo = true
		} else if newCombo {
			comboIndex += 1 + (flags&typeSkip)>>4
		}
		obj.NewCombo = newCombo
		obj.ComboIndex = comboIndex
		b.Objects = append(b.Objects, obj)
	}

	sort.SliceStable(b.Objects, func(i, j int) bool {
		return b.Objects[i].StartTime < b.Objects[j].StartTime
	})
	for i, obj := range b.Objects {
		obj.ID = i + 1
	}
	b.Section = section.String()

	return b, nil
}

func ms(f float64) time.Duration {
	return time.Duration(f * float64(time.Millisecond))
}

func parseTimingPoint(line string) (game.TimingPoint, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return game.TimingPoint{}, fmt.Errorf("timing point: too few fields in %q", line)
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if nil != err {
		return game.TimingPoint{}, fmt.Errorf("timing point time: %w", err)
	}
	beatLength, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if nil != err {
		return game.TimingPoint{}, fmt.Errorf("timing point beat length: %w", err)
	}
	inherited := beatLength < 0
	if len(parts) >= 7 {
		inherited = strings.TrimSpace(parts[6]) == "0"
	}
	return game.TimingPoint{Time: ms(t), BeatLength: beatLength, Inherited: inherited}, nil
}

// timingAt returns the beat length and slider velocity in effect at t.
func timingAt(points []game.TimingPoint, t time.Duration) (float64, float64) {
	beatLength, velocity := 500.0, 1.0
	for _, tp := range points {
		if tp.Time > t {
			break
		}
		if tp.Inherited {
			velocity = tp.SliderVelocity()
		} else if tp.BeatLength > 0 {
			beatLength = tp.BeatLength
			velocity = 1
		}
	}
	return beatLength, velocity
}

func (p *DefaultParser) parseHitObject(b *game.Beatmap, line string) (*game.HitObject, int, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return nil, 0, fmt.Errorf("hit object: too few fields in %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if nil != err {
		return nil, 0, fmt.Errorf("hit object x: %w", err)
	}
	t, err := strconv.ParseFloat(parts[2], 64)
	if nil != err {
		return nil, 0, fmt.Errorf("hit object time: %w", err)
	}
	flags, err := strconv.Atoi(parts[3])
	if nil != err {
		return nil, 0, fmt.Errorf("hit object type: %w", err)
	}

	pos := x / game.PlayfieldWidth
	if pos < 0 {
		pos = 0
	} else if pos > 1 {
		pos = 1
	}
	obj := &game.HitObject{
		Kind:      game.KindFruit,
		StartTime: ms(t),
		X:         pos,
		Scale:     b.Difficulty.ObjectScale(),
	}

	switch {
	case flags&typeSlider != 0:
		if len(parts) < 8 {
			return nil, 0, fmt.Errorf("slider: too few fields in %q", line)
		}
		slides, err := strconv.Atoi(parts[6])
		if nil != err {
			return nil, 0, fmt.Errorf("slider repeats: %w", err)
		}
		length, err := strconv.ParseFloat(parts[7], 64)
		if nil != err {
			return nil, 0, fmt.Errorf("slider length: %w", err)
		}
		beatLength, velocity := timingAt(b.TimingPoints, obj.StartTime)
		span := length / (b.Difficulty.SliderMultiplier * 100 * velocity) * beatLength
		obj.Kind = game.KindJuiceStream
		obj.EndTime = obj.StartTime + ms(float64(slides)*span)
	case flags&typeSpinner != 0:
		if len(parts) < 6 {
			return nil, 0, fmt.Errorf("spinner: too few fields in %q", line)
		}
		end, err := strconv.ParseFloat(parts[5], 64)
		if nil != err {
			return nil, 0, fmt.Errorf("spinner end: %w", err)
		}
		obj.Kind = game.KindBananaShower
		obj.EndTime = ms(end)
	case flags&typeCircle == 0:
		return nil, 0, fmt.Errorf("hit object: unknown type %d", flags)
	}

	return obj, flags, nil
}
