// Package audio provides the on-disk BPM tag abstraction and the
// playback backends for taptempo.
//
// # Tag reading and writing
//
// Tracks are loaded with a one-shot tag probe:
//
//	track, err := audio.LoadTrack("song.mp3")
//	bpm, ok := track.BPM()
//
// Two tag containers are supported behind the same contract:
//   - MP3: an ID3v2.4 TBPM text frame (via bogem/id3v2)
//   - FLAC: a BPM vorbis comment in the VORBIS_COMMENT block
//     (via go-flac, with the comment body codec in this package)
//
// A missing tag or field is a value ("no BPM"), not an error; a corrupt
// container is a hard error. Writes re-read the container from disk,
// set the field and persist the whole container back — a plain
// read-modify-write with no atomicity between the two I/O steps.
//
// Confirmed values go through a Writer, which either tags the input
// file in place or copies it into an output directory first:
//
//	w, err := audio.NewDirectoryWriter("/out")
//	err = w.WriteBPM(track, 128)
//
// # Playback
//
// Playback is an opaque start/stop resource:
//
//	pb, err := player.Play(track.Path())
//	...
//	err = pb.Stop() // synchronous; no overlap with the next Play
//
// Two backends exist: MPVPlayer spawns an external mpv process per
// track; SpeakerPlayer decodes in-process with beep and streams to the
// system audio device.
package audio
