package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records how long each startup step took.
// Milestones marked before a logger is attached are buffered.
// Enabled only when log level is debug or trace.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	milestones []Milestone
	enabled    bool
	logger     *zerolog.Logger
	pending    int // milestones not yet emitted
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace now. It is a no-op unless level parses to
// debug or trace.
func NewStartupTrace(level string) *StartupTrace {
	lvl := ParseLevel(level)
	return &StartupTrace{
		t0:      time.Now(),
		enabled: lvl <= zerolog.DebugLevel,
	}
}

// SetLogger attaches the logger and flushes buffered milestones.
func (st *StartupTrace) SetLogger(logger *zerolog.Logger) {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.logger = logger
	for _, m := range st.milestones[len(st.milestones)-st.pending:] {
		st.emit(m)
	}
	st.pending = 0
}

// Mark records a milestone with the given name.
func (st *StartupTrace) Mark(name string) {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	m := Milestone{Name: name, Elapsed: elapsed}
	if n := len(st.milestones); n > 0 {
		m.Delta = elapsed - st.milestones[n-1].Elapsed
	}
	st.milestones = append(st.milestones, m)

	if st.logger == nil {
		st.pending++
		return
	}
	st.emit(m)
}

// emit logs a single milestone. Caller must hold mutex.
func (st *StartupTrace) emit(m Milestone) {
	st.logger.Debug().
		Str("milestone", m.Name).
		Dur("elapsed", m.Elapsed).
		Dur("delta", m.Delta).
		Msg("startup")
}

// Finish stops recording and logs a one-line summary.
func (st *StartupTrace) Finish() {
	if st == nil || !st.enabled {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	if st.logger == nil {
		return
	}

	parts := make([]string, len(st.milestones))
	for i, m := range st.milestones {
		parts[i] = fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds())
	}

	st.logger.Debug().
		Dur("total", time.Since(st.t0)).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup complete")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}
