// Package demo defines the demo data model: timestamped colored lines,
// named line sequences, and the immutable catalog that maps demo names
// to sequences. The catalog is populated once and injected into the
// playback engine; it is never ambient global state.
package demo
