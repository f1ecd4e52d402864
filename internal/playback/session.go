package playback

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/termplay/internal/demo"
	"github.com/dshills/termplay/internal/event"
	"github.com/dshills/termplay/internal/surface"
)

// Session owns the pending scheduled tasks of one playback on one surface.
// Lifecycle: created by Player.Start, which clears the surface and
// schedules one task per line; over when every task has fired or the
// session is cancelled. At most one session is current per surface
// identity; Player enforces cancel-before-replace.
type Session struct {
	id       string
	surface  surface.Surface
	demoName string
	clock    Clock
	renderer *Renderer
	typing   time.Duration
	bus      *event.Bus

	mu        sync.Mutex
	timers    map[int]Timer
	nextTok   int
	remaining int
	cancelled bool
	finished  bool
	done      chan struct{}
}

func newSession(s surface.Surface, d demo.Demo, clock Clock, renderer *Renderer, typing time.Duration, bus *event.Bus) *Session {
	return &Session{
		id:       uuid.New().String(),
		surface:  s,
		demoName: d.Name,
		clock:    clock,
		renderer: renderer,
		typing:   typing,
		bus:      bus,
		timers:   make(map[int]Timer),
		done:     make(chan struct{}),
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Done is closed when the session has finished or been cancelled.
func (s *Session) Done() <-chan struct{} { return s.done }

// Cancelled reports whether the session was cancelled before finishing.
func (s *Session) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// start clears the surface and schedules every line at its offset.
// A demo with no lines is immediately done.
func (s *Session) start(lines []demo.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A session cancelled before starting must not touch the surface;
	// another session may own it by now.
	if s.cancelled {
		return
	}

	s.surface.Clear()

	if len(lines) == 0 {
		s.finish()
		return
	}

	s.remaining = len(lines)
	for i, line := range lines {
		i, line := i, line
		s.schedule(line.Delay, func() {
			s.runLine(i, line)
		})
	}
}

// schedule registers a timer in the pending set. The wrapper removes the
// timer once it fires and drops the task if the session was cancelled in
// the meantime. Caller holds s.mu.
func (s *Session) schedule(d time.Duration, run func()) {
	tok := s.nextTok
	s.nextTok++

	s.timers[tok] = s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.timers, tok)
		if s.cancelled {
			return
		}
		run()
	})
}

// runLine renders one line. The first line goes through the character
// reveal; all others append whole. Caller holds s.mu.
func (s *Session) runLine(index int, line demo.Line) {
	first := index == 0
	runes := []rune(line.Text)

	if !first || len(runes) == 0 {
		s.renderer.Append(s.surface, line)
		s.publishLine(index, line.Text)
		s.lineDone()
		return
	}

	node := s.renderer.Begin(s.surface, line)
	s.renderer.Type(s.surface, node, runes[0])
	if len(runes) == 1 {
		s.publishLine(index, line.Text)
		s.lineDone()
		return
	}
	s.schedule(s.typing, func() {
		s.typeStep(node, line, runes, 1)
	})
}

// typeStep reveals the next character of the first line and re-arms
// itself until the text is fully shown. Caller holds s.mu.
func (s *Session) typeStep(node surface.Node, line demo.Line, runes []rune, idx int) {
	s.renderer.Type(s.surface, node, runes[idx])
	idx++
	if idx == len(runes) {
		s.publishLine(0, line.Text)
		s.lineDone()
		return
	}
	s.schedule(s.typing, func() {
		s.typeStep(node, line, runes, idx)
	})
}

// lineDone accounts for one fully rendered line. Caller holds s.mu.
func (s *Session) lineDone() {
	s.remaining--
	if s.remaining == 0 {
		s.finish()
	}
}

// finish marks the session complete. Caller holds s.mu.
func (s *Session) finish() {
	if s.finished || s.cancelled {
		return
	}
	s.finished = true
	close(s.done)
	s.publish(event.PlaybackFinished)
}

// cancel stops every pending timer, including in-flight character-reveal
// sub-tasks, and empties the pending set. Once cancel returns, no task of
// this session mutates the surface again. Idempotent: cancelling a
// finished or already-cancelled session is a no-op.
func (s *Session) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelled || s.finished {
		return
	}
	s.cancelled = true
	for tok, t := range s.timers {
		t.Stop()
		delete(s.timers, tok)
	}
	close(s.done)
	s.publish(event.PlaybackCancelled)
}

func (s *Session) publish(t event.Type) {
	s.bus.Publish(event.Event{
		Type:    t,
		Surface: s.surface.ID(),
		Demo:    s.demoName,
		Session: s.id,
		Time:    s.clock.Now(),
	})
}

func (s *Session) publishLine(index int, text string) {
	s.bus.Publish(event.Event{
		Type:    event.LineRendered,
		Surface: s.surface.ID(),
		Demo:    s.demoName,
		Session: s.id,
		Line:    index,
		Text:    text,
		Time:    s.clock.Now(),
	})
}
