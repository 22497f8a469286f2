package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"git.lost.host/meutraa/eotc/internal/anim"
	"git.lost.host/meutraa/eotc/internal/catcher"
	"git.lost.host/meutraa/eotc/internal/clock"
	"git.lost.host/meutraa/eotc/internal/config"
	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/logx"
	"git.lost.host/meutraa/eotc/internal/parser"
	"git.lost.host/meutraa/eotc/internal/playfield"
	"git.lost.host/meutraa/eotc/internal/render"
	"git.lost.host/meutraa/eotc/internal/score"
	"git.lost.host/meutraa/eotc/internal/skin"
)

type Program struct {
	Parser   *parser.DefaultParser
	Scorer   *score.DefaultScorer
	Renderer *render.DefaultRenderer

	beatmap   *game.Beatmap
	skin      *skin.Skin
	playfield *playfield.Playfield
	log       *logx.Logger

	manual *clock.Manual
	scaled *clock.Scaled
	clock  clock.Clock
	start  time.Duration
	end    time.Duration // Nothing can happen after this
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Scorer = &score.DefaultScorer{}

	var err error
	p.beatmap, err = p.Parser.Parse(*config.Beatmap)
	if nil != err {
		return err
	}
	if len(p.beatmap.Objects) == 0 {
		return fmt.Errorf("%s has no hit objects", *config.Beatmap)
	}

	p.skin = skin.Default()
	if *config.Skin != "" {
		p.skin, err = skin.Load(*config.Skin)
		if nil != err {
			return err
		}
	}

	if !*config.NoSave {
		if err := p.Scorer.Init(*config.Database); nil != err {
			return err
		}
	}

	p.start = playfield.StartTime(p.beatmap)
	for _, obj := range p.beatmap.Objects {
		if end := obj.End() + anim.MissDuration; end > p.end {
			p.end = end
		}
	}
	if *config.Realtime {
		p.scaled = clock.NewScaled(*config.Rate, p.start)
		p.clock = p.scaled
	} else {
		p.manual = clock.NewManual(p.start)
		p.clock = p.manual
	}

	logx.SetVerbose(*config.Verbose)
	p.log = logx.New("playfield", p.clock)

	driver, err := catcher.NewDriver(*config.Driver, *config.Seed)
	if nil != err {
		return err
	}
	c := catcher.New(p.beatmap.Difficulty)
	p.playfield = playfield.New(p.beatmap, c, driver, p.skin, p.log)

	fd := int(os.Stdout.Fd())
	p.Renderer = &render.DefaultRenderer{
		Out:     os.Stdout,
		Color:   term.IsTerminal(fd),
		Verbose: *config.Verbose,
	}
	if width, _, err := term.GetSize(fd); nil == err {
		p.Renderer.Width = width
	}
	p.playfield.OnEvent = p.Renderer.Event

	return nil
}

func (p *Program) Deinit() {
	p.Scorer.Deinit()
}

func (p *Program) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *config.Watch && *config.Skin != "" {
		go func() {
			if err := skin.Watch(ctx, *config.Skin, logx.New("skin", p.clock), func(s *skin.Skin) {
				p.log.Infof("reloaded skin %v", s.Name)
				p.playfield.SetSkin(s)
			}); nil != err {
				p.log.Warnf("unable to watch skin: %v", err)
			}
		}()
	}

	p.Renderer.Header(p.beatmap)
	for now := p.clock.Now(); now <= p.end && !p.playfield.Done(); now = p.tick() {
		p.playfield.Update(now)
		if *config.Realtime {
			if err := p.Renderer.Flush(); nil != err {
				return err
			}
		}
	}

	judgements := p.playfield.Judgements()
	sc := p.Scorer.Score(judgements)
	p.Renderer.Summary(sc, p.playfield.Plated())

	if !*config.NoSave {
		histories, err := p.Scorer.Load(p.beatmap)
		if nil != err {
			return err
		}
		best, bestScore := p.Scorer.Best(histories)
		p.Renderer.History(best, bestScore, len(histories))

		id, err := p.Scorer.Save(p.beatmap, judgements, *config.Rate)
		if nil != err {
			return err
		}
		p.log.Debugf("saved run %v", id)
	}

	return p.Renderer.Flush()
}

// tick moves the clock on by one step and returns the new time.
func (p *Program) tick() time.Duration {
	if nil != p.manual {
		return p.manual.Advance(*config.Tick)
	}
	time.Sleep(p.scaled.SongToReal(*config.Tick))
	return p.scaled.Now()
}
