// Package event provides a small synchronous publish/subscribe bus for
// playback lifecycle events. The application subscribes for logging;
// tests subscribe to observe engine behavior. Handlers run inline on the
// publishing goroutine and must be fast and must not call back into the
// playback engine.
package event
