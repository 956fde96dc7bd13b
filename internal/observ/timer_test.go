package observ

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	var mu sync.Mutex
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(step)
		return now
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	discover := tm.Track("discover")
	discover("2 files")
	lex := tm.Begin("lex")
	tm.End(lex, "")
	tm.End(99, "ignored")

	r := tm.Report()
	require.Len(t, r.Phases, 2)
	assert.Equal(t, PhaseReport{Name: "discover", DurationMS: 1, Note: "2 files"}, r.Phases[0])
	assert.Equal(t, PhaseReport{Name: "lex", DurationMS: 1}, r.Phases[1])
	assert.InDelta(t, 3.0, r.TotalMS, 1e-9)

	s := tm.Summary()
	assert.Contains(t, s, "discover")
	assert.Contains(t, s, "// 2 files")
	assert.Contains(t, s, "total")
}

func TestTimerOverlappingPhases(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)
	a := tm.Begin("a") // t=1
	b := tm.Begin("b") // t=2
	tm.End(a, "")      // t=3
	tm.End(b, "")      // t=4
	assert.InDelta(t, 3.0, tm.Report().TotalMS, 1e-9)
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Track("unit")("")
		}()
	}
	wg.Wait()
	assert.Len(t, tm.Report().Phases, 16)
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Track("x")("")
	assert.Equal(t, Report{}, tm.Report())
}
