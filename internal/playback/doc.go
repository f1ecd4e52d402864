// Package playback implements the scheduled playback engine. A Player
// owns at most one current session per surface identity; starting a new
// session cancels every pending task of the predecessor before anything
// renders. Each session schedules one task per demo line at its absolute
// offset and registers every timer, including the character-reveal chain
// for the first line, in its own pending set so cancellation tears the
// whole session down as a unit.
package playback
