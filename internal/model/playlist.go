package model

// Playlist is an ordered, index-addressable sequence of tracks with a
// single current position.
//
// Navigation wraps modulo the playlist length, so the session never
// reaches an implicit end: advancing past the last track returns to the
// first one. A Playlist is exclusively owned by the session controller.
type Playlist struct {
	tracks  []*Track
	current int
}

// NewPlaylist creates a playlist positioned on the first track.
func NewPlaylist(tracks []*Track) *Playlist {
	return &Playlist{tracks: tracks}
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Index returns the current position.
func (p *Playlist) Index() int {
	return p.current
}

// Current returns the track at the current position, or nil for an
// empty playlist.
func (p *Playlist) Current() *Track {
	if len(p.tracks) == 0 {
		return nil
	}
	return p.tracks[p.current]
}

// Tracks returns the underlying track slice, in playlist order.
func (p *Playlist) Tracks() []*Track {
	return p.tracks
}

// Next advances the current position, wrapping to the start after the
// last track.
func (p *Playlist) Next() {
	if len(p.tracks) == 0 {
		return
	}
	p.current = (p.current + 1) % len(p.tracks)
}

// Prev retreats the current position, wrapping to the end before the
// first track.
func (p *Playlist) Prev() {
	if len(p.tracks) == 0 {
		return
	}
	p.current = (p.current - 1 + len(p.tracks)) % len(p.tracks)
}
