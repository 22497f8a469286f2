// Package playfield drops a beatmap's objects onto a clock, judges them
// against the catcher and sequences their exit animations.
package playfield

import (
	"errors"
	"sync"
	"time"

	"git.lost.host/meutraa/eotc/internal/anim"
	"git.lost.host/meutraa/eotc/internal/catcher"
	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/judge"
	"git.lost.host/meutraa/eotc/internal/logx"
	"git.lost.host/meutraa/eotc/internal/skin"
)

var ErrNotLive = errors.New("playfield: object is not on the playfield")

type Playfield struct {
	mu sync.Mutex

	beatmap   *game.Beatmap
	catcher   *catcher.Catcher
	driver    catcher.Driver
	check     judge.PositionPredicate
	sequencer *anim.Sequencer
	skin      *skin.Skin
	log       *logx.Logger

	live       []*DrawableObject
	disposed   map[int]bool
	judgements []game.Judgement
	plated     int
	last       time.Duration
	started    bool

	// OnEvent, when set, sees every state change in the order it happened
	OnEvent func(Event)
}

// New builds a playfield. A nil catcher leaves the position predicate unset
// and nothing is ever judged.
func New(b *game.Beatmap, c *catcher.Catcher, driver catcher.Driver, s *skin.Skin, log *logx.Logger) *Playfield {
	p := &Playfield{
		beatmap:   b,
		catcher:   c,
		driver:    driver,
		sequencer: anim.NewSequencer(),
		skin:      s,
		log:       log,
		disposed:  map[int]bool{},
	}
	if nil != c {
		p.check = c.CheckPosition
	}
	b.SetActive(0, 0)
	return p
}

// StartTime is the earliest time anything becomes visible.
func StartTime(b *game.Beatmap) time.Duration {
	if len(b.Objects) == 0 {
		return 0
	}
	start := b.Objects[0].StartTime - anim.Preempt
	if start > 0 {
		return 0
	}
	return start
}

func (p *Playfield) emit(ev Event) {
	if nil != p.OnEvent {
		p.OnEvent(ev)
	}
}

// Update advances the playfield to now. It must be called with
// non-decreasing times.
func (p *Playfield) Update(now time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed := time.Duration(0)
	if p.started {
		elapsed = now - p.last
	}
	p.started = true
	p.last = now

	_, start, end := p.beatmap.Active()

	// Bring in everything that is now inside the preempt window
	for end < len(p.beatmap.Objects) && p.beatmap.Objects[end].StartTime-anim.Preempt <= now {
		p.spawn(p.beatmap.Objects[end], now)
		end++
	}
	p.beatmap.SetActive(start, end)

	if nil != p.catcher && nil != p.driver {
		active, _, _ := p.beatmap.Active()
		p.driver.Update(p.catcher, active, now, elapsed)
	}

	for _, d := range p.live {
		if d.Judged {
			continue
		}
		result, ok := judge.Evaluate(d.Object, now-d.Object.StartTime, p.check)
		if !ok {
			continue
		}
		d.Judged = true
		d.Judgement = game.Judgement{ObjectID: d.Object.ID, Result: result, Time: now}
		p.judgements = append(p.judgements, d.Judgement)
		if result == game.Perfect && d.Object.StaysOnPlate() {
			p.plated++
		}
		p.log.Debugf("object %d %v %v", d.Object.ID, d.Object.Kind, result)
		p.emit(Event{Kind: Judged, Time: now, Drawable: d})
		p.arm(d, result.Armed(), now)
	}

	live := p.live[:0]
	for _, d := range p.live {
		if !d.unanimated {
			d.Visual = anim.Resolve(d.Ops(), now, anim.Visual{Rotation: d.Rotation})
		}
		// Objects without an animation leave as soon as they are judged
		if d.Visual.Expired || (d.unanimated && d.Judged) {
			p.dispose(d)
			p.emit(Event{Kind: Expired, Time: now, Drawable: d})
			continue
		}
		live = append(live, d)
	}
	p.live = live

	for start < end && p.disposed[p.beatmap.Objects[start].ID] {
		start++
	}
	p.beatmap.SetActive(start, end)
}

func (p *Playfield) spawn(obj *game.HitObject, now time.Duration) {
	d := &DrawableObject{
		Object:   obj,
		Rotation: restingRotation(obj),
		Accent:   p.skin.AccentColor(obj),
	}
	seq, err := p.sequencer.Schedule(obj, game.Idle, d.Rotation)
	if nil != err {
		p.log.Warnf("object %d will not be animated: %v", obj.ID, err)
		d.unanimated = true
		d.Visual = anim.Visual{Alpha: 1, Rotation: d.Rotation}
	} else {
		d.track.Apply(seq)
		d.Visual = anim.Resolve(d.Ops(), now, anim.Visual{Rotation: d.Rotation})
	}
	p.live = append(p.live, d)
	p.emit(Event{Kind: Spawned, Time: now, Drawable: d, Sequence: seq})
}

func (p *Playfield) arm(d *DrawableObject, state game.ArmedState, now time.Duration) error {
	if d.unanimated {
		return nil
	}
	if from, armed := p.sequencer.State(d.Object); armed && from != state {
		p.log.Debugf("rearming object %d from %v to %v", d.Object.ID, from, state)
	}
	seq, err := p.sequencer.Schedule(d.Object, state, d.Rotation)
	if nil != err {
		p.log.Errorf("unable to arm object %d: %v", d.Object.ID, err)
		return err
	}
	d.track.Apply(seq)
	if len(seq.Ops) > 0 || len(seq.Cancelled) > 0 {
		ev := Event{Kind: Armed, Time: now, Drawable: d, Sequence: seq}
		ev.Expires, ev.Expiring = d.track.ExpireTime()
		p.emit(ev)
	}
	return nil
}

func (p *Playfield) dispose(d *DrawableObject) {
	p.sequencer.Forget(d.Object)
	p.disposed[d.Object.ID] = true
}

// Rearm replaces the exit animation of an object that is still live.
func (p *Playfield) Rearm(id int, state game.ArmedState) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, d := range p.live {
		if d.Object.ID == id {
			return p.arm(d, state, p.last)
		}
	}
	return ErrNotLive
}

// SetSkin swaps the skin and recolours every live object.
func (p *Playfield) SetSkin(s *skin.Skin) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.skin = s
	for _, d := range p.live {
		d.Accent = s.AccentColor(d.Object)
	}
}

// Live returns the objects currently on the playfield, in start order.
func (p *Playfield) Live() []*DrawableObject {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*DrawableObject, len(p.live))
	copy(out, p.live)
	return out
}

func (p *Playfield) Judgements() []game.Judgement {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]game.Judgement, len(p.judgements))
	copy(out, p.judgements)
	return out
}

// Plated counts the caught objects that stayed on the plate.
func (p *Playfield) Plated() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.plated
}

// Done reports whether every object has come and gone.
func (p *Playfield) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.disposed) == len(p.beatmap.Objects)
}
