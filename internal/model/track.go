package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFileType is returned when an input path has an extension
// that does not map to a known tag format.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// Format identifies the on-disk tag container of a track.
//
// The set of formats is closed: adding a new container means adding a
// constant here and the matching read/write branches in the audio package.
type Format int

const (
	// FormatID3 stores the tempo in a TBPM text frame of an ID3v2 tag (.mp3).
	FormatID3 Format = iota

	// FormatVorbis stores the tempo as a BPM vorbis comment in a FLAC
	// metadata block (.flac).
	FormatVorbis
)

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatID3:
		return "id3"
	case FormatVorbis:
		return "vorbis"
	default:
		return "unknown"
	}
}

// DetectFormat inspects the file extension and returns the tag format
// used for the path.
//
// The extension check is case-insensitive. Unknown extensions return an
// error wrapping ErrUnsupportedFileType that carries the offending path.
//
// Example:
//
//	format, err := model.DetectFormat("song.mp3") // FormatID3, nil
//	format, err = model.DetectFormat("song.ogg")  // error
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return FormatID3, nil
	case ".flac":
		return FormatVorbis, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
	}
}

// Track represents one input audio file together with its tag format and
// the last BPM value read from or written to disk.
//
// Tracks are constructed once per input path when the session starts
// (see audio.LoadTrack, which probes the tag) and live for the whole
// process. The cached BPM is only mutated through a successful tag
// write, so it never diverges from the on-disk value.
type Track struct {
	path   string
	format Format

	bpm    uint
	hasBPM bool
}

// NewTrack creates a Track for path with the given format and cached
// BPM state. hasBPM reports whether the file currently carries a BPM tag.
func NewTrack(path string, format Format, bpm uint, hasBPM bool) *Track {
	return &Track{
		path:   path,
		format: format,
		bpm:    bpm,
		hasBPM: hasBPM,
	}
}

// Path returns the input file path. It is immutable for the session.
func (t *Track) Path() string {
	return t.path
}

// Format returns the track's tag format.
func (t *Track) Format() Format {
	return t.format
}

// BPM returns the cached BPM value and whether one is present.
func (t *Track) BPM() (uint, bool) {
	return t.bpm, t.hasBPM
}

// SetCachedBPM updates the in-memory BPM after a successful tag write.
//
// Callers must only invoke this once the value has been persisted, so
// the cache stays in sync with disk.
func (t *Track) SetCachedBPM(bpm uint) {
	t.bpm = bpm
	t.hasBPM = true
}
