package clock

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Clock reports song time, the time objects are scheduled against.
type Clock interface {
	Now() time.Duration
}

// Manual only moves when it is told to. It may be read from other
// goroutines while it is being advanced.
type Manual struct {
	now atomic.Int64
}

func NewManual(start time.Duration) *Manual {
	c := &Manual{}
	c.now.Store(int64(start))
	return c
}

func (c *Manual) Now() time.Duration {
	return time.Duration(c.now.Load())
}

func (c *Manual) Advance(d time.Duration) time.Duration {
	return time.Duration(c.now.Add(int64(d)))
}

// Scaled follows the wall clock, sped up or slowed down by rate.
type Scaled struct {
	rate      float64 // 1.5 => 1.5s of song per real second
	startReal time.Time
	startSong time.Duration
}

func NewScaled(rate float64, start time.Duration) *Scaled {
	if rate <= 0 {
		rate = 1
	}
	return &Scaled{
		rate:      rate,
		startReal: time.Now(),
		startSong: start,
	}
}

func (c *Scaled) Now() time.Duration {
	elapsed := time.Since(c.startReal)
	return c.startSong + time.Duration(float64(elapsed.Nanoseconds())*c.rate)
}

// SongToReal converts a song duration into the wall time it takes.
func (c *Scaled) SongToReal(d time.Duration) time.Duration {
	return time.Duration(float64(d) / c.rate)
}

// Stamp formats song time as mm:ss.mmm
func Stamp(t time.Duration) string {
	sign := ""
	if t < 0 {
		sign = "-"
		t = -t
	}
	ms := t.Milliseconds()
	return fmt.Sprintf("%s%02d:%02d.%03d", sign, ms/60000, (ms/1000)%60, ms%1000)
}
