package logx

import (
	"fmt"
	"log"
	"sync/atomic"

	"git.lost.host/meutraa/eotc/internal/clock"
)

type Logger struct {
	id    string
	clock clock.Clock
}

func New(id string, c clock.Clock) *Logger {
	return &Logger{id: id, clock: c}
}

func (l *Logger) with(level string, msg string) string {
	ts := "--:--.---"
	if nil != l.clock {
		ts = clock.Stamp(l.clock.Now())
	}
	return fmt.Sprintf("[%s] [%s] [%s] %s", ts, l.id, level, msg)
}

var verbose atomic.Bool

// SetVerbose turns DEBUG lines on or off for every logger.
func SetVerbose(v bool) { verbose.Store(v) }

func (l *Logger) Debugf(f string, a ...any) {
	if !verbose.Load() {
		return
	}
	log.Println(l.with("DEBUG", fmt.Sprintf(f, a...)))
}
func (l *Logger) Infof(f string, a ...any)  { log.Println(l.with("INFO", fmt.Sprintf(f, a...))) }
func (l *Logger) Warnf(f string, a ...any)  { log.Println(l.with("WARN", fmt.Sprintf(f, a...))) }
func (l *Logger) Errorf(f string, a ...any) { log.Println(l.with("ERROR", fmt.Sprintf(f, a...))) }
