package playback

import (
	"sync"
	"time"

	"github.com/dshills/termplay/internal/demo"
	"github.com/dshills/termplay/internal/event"
	"github.com/dshills/termplay/internal/style"
	"github.com/dshills/termplay/internal/surface"
)

// DefaultTypingInterval is the pause between revealed characters on the
// first line of a demo.
const DefaultTypingInterval = 45 * time.Millisecond

// Option configures a Player.
type Option func(*Player)

// WithClock replaces the wall clock. Tests pass a FakeClock.
func WithClock(c Clock) Option {
	return func(p *Player) { p.clock = c }
}

// WithTypingInterval sets the per-character delay of the first line.
func WithTypingInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.typing = d
		}
	}
}

// WithBus sets the event bus playback events are published on.
func WithBus(b *event.Bus) Option {
	return func(p *Player) { p.bus = b }
}

// WithTheme sets the palette used to resolve line color tags.
func WithTheme(t *style.Theme) Option {
	return func(p *Player) { p.renderer = NewRenderer(t) }
}

// Player starts and cancels playback sessions. It guarantees at most one
// live session per surface: starting a demo on a surface cancels whatever
// was playing there first.
type Player struct {
	registry *surface.Registry
	clock    Clock
	renderer *Renderer
	typing   time.Duration
	bus      *event.Bus

	mu       sync.Mutex
	catalog  *demo.Catalog
	sessions map[string]*Session
}

// NewPlayer builds a Player over a demo catalog and a surface registry.
func NewPlayer(catalog *demo.Catalog, registry *surface.Registry, opts ...Option) *Player {
	p := &Player{
		registry: registry,
		clock:    NewClock(),
		renderer: NewRenderer(nil),
		typing:   DefaultTypingInterval,
		catalog:  catalog,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PlayDemo looks up the surface and the demo by name and starts playback.
// An unknown surface or demo leaves every surface untouched; the miss is
// reported on the event bus only.
func (p *Player) PlayDemo(surfaceID, demoName string) {
	s, ok := p.registry.Get(surfaceID)
	if !ok {
		p.bus.Publish(event.Event{
			Type:    event.SurfaceNotFound,
			Surface: surfaceID,
			Demo:    demoName,
			Time:    p.clock.Now(),
		})
		return
	}

	p.mu.Lock()
	d, err := p.catalog.Get(demoName)
	p.mu.Unlock()
	if err != nil {
		p.bus.Publish(event.Event{
			Type:    event.DemoNotFound,
			Surface: surfaceID,
			Demo:    demoName,
			Time:    p.clock.Now(),
		})
		return
	}

	p.Start(s, d)
}

// Start cancels the surface's current session, if any, and begins playing
// d on it.
func (p *Player) Start(s surface.Surface, d demo.Demo) *Session {
	p.mu.Lock()
	prev := p.sessions[s.ID()]
	sess := newSession(s, d, p.clock, p.renderer, p.typing, p.bus)
	p.sessions[s.ID()] = sess
	p.mu.Unlock()

	if prev != nil {
		prev.cancel()
	}

	p.bus.Publish(event.Event{
		Type:    event.PlaybackStarted,
		Surface: s.ID(),
		Demo:    d.Name,
		Session: sess.ID(),
		Time:    p.clock.Now(),
	})
	sess.start(d.Lines)
	return sess
}

// Cancel stops playback on the named surface. Cancelling a surface with
// nothing playing is a no-op.
func (p *Player) Cancel(surfaceID string) {
	p.mu.Lock()
	sess := p.sessions[surfaceID]
	delete(p.sessions, surfaceID)
	p.mu.Unlock()

	if sess != nil {
		sess.cancel()
	}
}

// CancelAll stops playback on every surface.
func (p *Player) CancelAll() {
	p.mu.Lock()
	sessions := p.sessions
	p.sessions = make(map[string]*Session)
	p.mu.Unlock()

	for _, sess := range sessions {
		sess.cancel()
	}
}

// Session returns the surface's current session, or nil.
func (p *Player) Session(surfaceID string) *Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessions[surfaceID]
}

// SetCatalog swaps the demo catalog. Running sessions keep the lines they
// were started with; only future lookups see the new catalog.
func (p *Player) SetCatalog(c *demo.Catalog) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.catalog = c
}

// Catalog returns the current demo catalog.
func (p *Player) Catalog() *demo.Catalog {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.catalog
}
