// Package anim turns armed states into declarative, time stamped visual
// operations and resolves those operations into a visual state.
package anim

import (
	"fmt"
	"time"
)

type Kind uint8

const (
	FadeIn Kind = iota
	FadeOut
	RotateTo
	Expire
)

func (k Kind) String() string {
	switch k {
	case FadeIn:
		return "fade-in"
	case FadeOut:
		return "fade-out"
	case RotateTo:
		return "rotate-to"
	case Expire:
		return "expire"
	}
	return "unknown"
}

type Easing uint8

const (
	Linear Easing = iota
	Out
)

func (e Easing) apply(p float64) float64 {
	if e == Out {
		return p * (2 - p)
	}
	return p
}

// Op is a single visual change. Ops sharing a Time run concurrently.
type Op struct {
	Time       time.Duration // Absolute start
	Duration   time.Duration
	Kind       Kind
	Target     float64 // Alpha for fades, degrees for rotations
	Easing     Easing
	Generation int // Which arming produced this op, 0 for the fade in
}

func (o Op) End() time.Duration {
	return o.Time + o.Duration
}

func (o Op) String() string {
	if o.Kind == Expire {
		return fmt.Sprintf("%8v %v", o.Time, o.Kind)
	}
	return fmt.Sprintf("%8v %v %.2f over %v", o.Time, o.Kind, o.Target, o.Duration)
}

// Sequence is the result of one call to Schedule.
type Sequence struct {
	Ops       []Op // Newly emitted, in time order
	Cancelled []Op // Previously emitted ops that must no longer run
}
