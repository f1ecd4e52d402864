package event

import "time"

// Type identifies the kind of event.
type Type string

// Event types published by the playback engine and catalog machinery.
const (
	PlaybackStarted   Type = "playback.started"
	LineRendered      Type = "playback.line"
	PlaybackFinished  Type = "playback.finished"
	PlaybackCancelled Type = "playback.cancelled"
	DemoNotFound      Type = "playback.demo_not_found"
	SurfaceNotFound   Type = "playback.surface_not_found"
	CatalogReloaded   Type = "catalog.reloaded"
)

// Event carries the details of one engine occurrence.
// Fields not relevant to a given type are left zero.
type Event struct {
	Type    Type
	Surface string // surface identity
	Demo    string // demo name
	Session string // playback session id
	Line    int    // line index within the demo
	Text    string // rendered line text
	Time    time.Time
}
