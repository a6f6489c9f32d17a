// Package session implements the interactive tap-tempo state machine.
//
// A session cycles through three modes: browsing (listening to the
// current track and tapping along), reviewing (a candidate BPM awaits
// a yes/no) and manual entry (typing a BPM digit by digit). The
// Controller consumes one Command per loop iteration and drives the
// playlist, the playback handle and the tag writer through the audio
// package.
//
// The BPM estimate comes from a fixed ten-sample Window of
// instantaneous tempos, each derived from the interval between two
// consecutive taps (60000 / interval in milliseconds). The reported
// average is truncated toward zero.
//
// Raw key events are translated by KeyMap.MapKey, a pure mapping with
// a disjoint key vocabulary per mode.
package session
