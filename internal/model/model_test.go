package model

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"song.mp3", FormatID3, false},
		{"song.MP3", FormatID3, false},
		{"/music/a/b/song.flac", FormatVorbis, false},
		{"song.FLAC", FormatVorbis, false},
		{"song.ogg", 0, true},
		{"song.wav", 0, true},
		{"song", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DetectFormat(%q) expected error, got %v", tt.path, got)
				}
				if !errors.Is(err, ErrUnsupportedFileType) {
					t.Errorf("error should wrap ErrUnsupportedFileType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestTrack_CachedBPM(t *testing.T) {
	track := NewTrack("song.mp3", FormatID3, 0, false)

	if _, ok := track.BPM(); ok {
		t.Error("fresh track without tag should have no BPM")
	}

	track.SetCachedBPM(128)
	bpm, ok := track.BPM()
	if !ok || bpm != 128 {
		t.Errorf("BPM() = %d, %v, want 128, true", bpm, ok)
	}
}

func TestPlaylist_WrapNavigation(t *testing.T) {
	tracks := []*Track{
		NewTrack("a.mp3", FormatID3, 0, false),
		NewTrack("b.flac", FormatVorbis, 0, false),
		NewTrack("c.mp3", FormatID3, 0, false),
	}
	pl := NewPlaylist(tracks)

	if pl.Index() != 0 {
		t.Fatalf("new playlist should start at 0, got %d", pl.Index())
	}

	pl.Next()
	pl.Next()
	if pl.Index() != 2 {
		t.Errorf("after two Next, index = %d, want 2", pl.Index())
	}

	pl.Next()
	if pl.Index() != 0 {
		t.Errorf("Next past the end should wrap to 0, got %d", pl.Index())
	}

	pl.Prev()
	if pl.Index() != 2 {
		t.Errorf("Prev before the start should wrap to 2, got %d", pl.Index())
	}

	if pl.Current() != tracks[2] {
		t.Error("Current() should return the track at the current index")
	}
}

func TestPlaylist_SingleTrack(t *testing.T) {
	pl := NewPlaylist([]*Track{NewTrack("a.mp3", FormatID3, 0, false)})

	pl.Next()
	if pl.Index() != 0 {
		t.Errorf("Next on single-track playlist should stay at 0, got %d", pl.Index())
	}
	pl.Prev()
	if pl.Index() != 0 {
		t.Errorf("Prev on single-track playlist should stay at 0, got %d", pl.Index())
	}
}

func TestPlaylist_Empty(t *testing.T) {
	pl := NewPlaylist(nil)

	if pl.Current() != nil {
		t.Error("Current() on empty playlist should be nil")
	}
	pl.Next() // must not panic
	pl.Prev()
}
