package anim

import (
	"errors"
	"time"

	"git.lost.host/meutraa/eotc/internal/game"
)

const (
	Preempt         = 1000 * time.Millisecond
	FadeInDuration  = 200 * time.Millisecond
	MissDuration    = 250 * time.Millisecond
	DefaultDuration = 0
)

var (
	ErrInvalidHitObject  = errors.New("anim: no hit object")
	ErrUnknownArmedState = errors.New("anim: unknown armed state")
)

type entry struct {
	state      game.ArmedState
	armed      bool
	generation int
	terminal   []Op
}

// Sequencer remembers what it already emitted for every object so that the
// fade in happens once and re-arming replaces the exit animation.
type Sequencer struct {
	entries map[int]*entry
}

func NewSequencer() *Sequencer {
	return &Sequencer{entries: map[int]*entry{}}
}

func (s *Sequencer) Schedule(obj *game.HitObject, state game.ArmedState, rotation float64) (Sequence, error) {
	var seq Sequence
	if obj == nil {
		return seq, ErrInvalidHitObject
	}
	if state > game.Missed {
		return seq, ErrUnknownArmedState
	}
	if s.entries == nil {
		s.entries = map[int]*entry{}
	}

	e, ok := s.entries[obj.ID]
	if !ok {
		e = &entry{}
		s.entries[obj.ID] = e
		seq.Ops = append(seq.Ops, Op{
			Time:     obj.StartTime - Preempt,
			Duration: FadeInDuration,
			Kind:     FadeIn,
			Target:   1,
		})
	}

	// Idle only ever takes an exit animation away
	if state == game.Idle {
		if e.armed {
			seq.Cancelled = e.terminal
			e.terminal = nil
			e.state = game.Idle
			e.armed = false
		}
		return seq, nil
	}
	if e.armed && e.state == state {
		return seq, nil
	}

	seq.Cancelled = e.terminal
	e.generation++
	e.terminal = terminal(obj, state, rotation, e.generation)
	e.state = state
	e.armed = true
	seq.Ops = append(seq.Ops, e.terminal...)
	return seq, nil
}

// State returns the state an object is armed with. Pending objects report
// Idle and false.
func (s *Sequencer) State(obj *game.HitObject) (game.ArmedState, bool) {
	e, ok := s.entries[obj.ID]
	if !ok {
		return game.Idle, false
	}
	return e.state, e.armed
}

// Forget drops an object once it has been disposed.
func (s *Sequencer) Forget(obj *game.HitObject) {
	delete(s.entries, obj.ID)
}

func terminal(obj *game.HitObject, state game.ArmedState, rotation float64, generation int) []Op {
	end := obj.End()
	switch state {
	case game.Missed:
		return []Op{
			{Time: end, Duration: MissDuration, Kind: FadeOut, Target: 0, Generation: generation},
			{Time: end, Duration: MissDuration, Kind: RotateTo, Target: rotation * 2, Easing: Out, Generation: generation},
			{Time: end + MissDuration, Kind: Expire, Generation: generation},
		}
	case game.Hit:
		return []Op{
			{Time: end, Duration: DefaultDuration, Kind: FadeOut, Target: 0, Generation: generation},
			{Time: end + DefaultDuration, Kind: Expire, Generation: generation},
		}
	}
	return nil
}
