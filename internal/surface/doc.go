// Package surface defines the rendering target the playback engine writes
// to. A Surface is append-only during playback: lines grow monotonically
// and only a new playback session clears it. The package provides a
// Registry for resolving surfaces by identity, an in-memory surface for
// tests, and a tcell-backed terminal surface with scrollback.
package surface
