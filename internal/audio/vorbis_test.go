package audio

import (
	"reflect"
	"testing"
)

func TestVorbisComment_RoundTrip(t *testing.T) {
	vc := &vorbisComment{
		Vendor:   "reference libFLAC 1.4.3",
		Comments: []string{"ARTIST=Someone", "TITLE=Something", "BPM=120"},
	}

	parsed, err := parseVorbisComment(vc.marshal())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !reflect.DeepEqual(parsed, vc) {
		t.Errorf("round trip changed the block: %+v vs %+v", parsed, vc)
	}
}

func TestVorbisComment_ParseTruncatedBlock(t *testing.T) {
	vc := &vorbisComment{Vendor: "v", Comments: []string{"BPM=120"}}
	data := vc.marshal()

	if _, err := parseVorbisComment(data[:len(data)-3]); err == nil {
		t.Error("truncated block should fail to parse")
	}
	if _, err := parseVorbisComment(nil); err == nil {
		t.Error("empty block should fail to parse")
	}
}

func TestVorbisComment_BPM(t *testing.T) {
	tests := []struct {
		name     string
		comments []string
		want     uint
		wantOK   bool
	}{
		{"present", []string{"ARTIST=x", "BPM=128"}, 128, true},
		{"absent", []string{"ARTIST=x"}, 0, false},
		{"non-numeric", []string{"BPM=fast"}, 0, false},
		{"key is case-sensitive", []string{"bpm=128"}, 0, false},
		{"no separator", []string{"BPM"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc := &vorbisComment{Comments: tt.comments}
			got, ok := vc.bpm()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("bpm() = %d, %v, want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestVorbisComment_SetBPMReplacesAllValues(t *testing.T) {
	vc := &vorbisComment{
		Comments: []string{"BPM=100", "ARTIST=x", "BPM=110"},
	}

	vc.setBPM(128)

	want := []string{"ARTIST=x", "BPM=128"}
	if !reflect.DeepEqual(vc.Comments, want) {
		t.Errorf("comments = %v, want %v", vc.Comments, want)
	}
}

func TestVorbisComment_SetBPMOnEmptyBlock(t *testing.T) {
	vc := &vorbisComment{}
	vc.setBPM(90)

	if got, ok := vc.bpm(); !ok || got != 90 {
		t.Errorf("bpm() = %d, %v, want 90, true", got, ok)
	}
}
