package game

import (
	"time"
)

type Result uint8

const (
	Perfect Result = iota
	Miss
)

func (r Result) String() string {
	switch r {
	case Perfect:
		return "Perfect"
	case Miss:
		return "Miss"
	}
	return "Unknown"
}

// ArmedState is the terminal outcome that drives the exit animation.
type ArmedState uint8

const (
	Idle ArmedState = iota // still pending
	Hit
	Missed
)

func (s ArmedState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Hit:
		return "Hit"
	case Missed:
		return "Miss"
	}
	return "Unknown"
}

// Armed maps a judgement result onto the state its animation uses.
func (r Result) Armed() ArmedState {
	if r == Perfect {
		return Hit
	}
	return Missed
}

type Judgement struct {
	ObjectID int
	Result   Result
	Time     time.Duration // When the judgement was made
}
