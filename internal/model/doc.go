// Package model defines the domain types shared across taptempo.
//
// # Tracks
//
// A Track pairs an input file path with its tag format and the BPM
// value last seen on disk:
//
//	format, err := model.DetectFormat("song.flac")
//	track := model.NewTrack("song.flac", format, 0, false)
//	bpm, ok := track.BPM() // 0, false: no tag yet
//
// The tag format is a closed set (ID3 text frames for MP3, vorbis
// comments for FLAC); the actual tag I/O lives in the audio package.
//
// # Playlists
//
// A Playlist holds the session's tracks and the current position.
// Navigation wraps in both directions:
//
//	pl := model.NewPlaylist(tracks)
//	pl.Next() // moves to track 1, or back to 0 on a 1-track list
package model
