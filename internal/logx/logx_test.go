package logx

import (
	"bytes"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"git.lost.host/meutraa/eotc/internal/clock"
)

func capture(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	flags := log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	})
	return &buf
}

func TestStampedLine(t *testing.T) {
	buf := capture(t)
	l := New("playfield", clock.NewManual(1500*time.Millisecond))
	l.Infof("judged %d", 4)
	expected := "[00:01.500] [playfield] [INFO] judged 4\n"
	if buf.String() != expected {
		t.Log("     Got", buf.String())
		t.Log("Expected", expected)
		t.Fail()
	}
}

func TestDebugGated(t *testing.T) {
	buf := capture(t)
	l := New("x", nil)
	SetVerbose(false)
	l.Debugf("hidden")
	if buf.Len() != 0 {
		t.Error("debug written while quiet", buf.String())
	}
	SetVerbose(true)
	defer SetVerbose(false)
	l.Debugf("shown")
	if !strings.Contains(buf.String(), "[DEBUG] shown") {
		t.Error("debug missing", buf.String())
	}
}

func TestLogWhileClockAdvances(t *testing.T) {
	buf := capture(t)
	c := clock.NewManual(0)
	l := New("playfield", c)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			l.Infof("reloaded skin %d", i)
		}
	}()
	for i := 0; i < 1000; i++ {
		c.Advance(time.Millisecond)
	}
	wg.Wait()

	if n := strings.Count(buf.String(), "[INFO] reloaded skin"); n != 100 {
		t.Error("expected 100 lines, got", n)
	}
}
