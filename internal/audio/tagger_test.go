package audio

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tapbeat/taptempo/internal/model"
)

// newMP3 writes an untagged fake MP3 file into dir. The ID3 layer only
// prepends a tag; it never inspects the audio payload.
func newMP3(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	payload := bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x00}, 64)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTrack_UnsupportedExtension(t *testing.T) {
	_, err := LoadTrack("song.ogg")
	if err == nil {
		t.Fatal("ogg input should fail to load")
	}
	if !errors.Is(err, model.ErrUnsupportedFileType) {
		t.Errorf("error should wrap ErrUnsupportedFileType, got %v", err)
	}
}

func TestLoadTrack_MissingFile(t *testing.T) {
	if _, err := LoadTrack(filepath.Join(t.TempDir(), "nope.mp3")); err == nil {
		t.Fatal("missing file should fail to load")
	}
}

func TestID3_RoundTrip(t *testing.T) {
	path := newMP3(t, t.TempDir(), "song.mp3")

	track, err := LoadTrack(path)
	if err != nil {
		t.Fatalf("LoadTrack failed: %v", err)
	}
	if _, ok := track.BPM(); ok {
		t.Fatal("untagged file should have no BPM")
	}

	if err := (InPlaceWriter{}).WriteBPM(track, 128); err != nil {
		t.Fatalf("WriteBPM failed: %v", err)
	}
	if bpm, ok := track.BPM(); !ok || bpm != 128 {
		t.Errorf("cached BPM = %d, %v, want 128, true", bpm, ok)
	}

	// A fresh probe of the same path must see the persisted value.
	reloaded, err := LoadTrack(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if bpm, ok := reloaded.BPM(); !ok || bpm != 128 {
		t.Errorf("reloaded BPM = %d, %v, want 128, true", bpm, ok)
	}
}

func TestID3_Overwrite(t *testing.T) {
	path := newMP3(t, t.TempDir(), "song.mp3")
	track, err := LoadTrack(path)
	if err != nil {
		t.Fatal(err)
	}

	w := InPlaceWriter{}
	if err := w.WriteBPM(track, 100); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBPM(track, 140); err != nil {
		t.Fatal(err)
	}

	reloaded, err := LoadTrack(path)
	if err != nil {
		t.Fatal(err)
	}
	if bpm, _ := reloaded.BPM(); bpm != 140 {
		t.Errorf("BPM after overwrite = %d, want 140", bpm)
	}
}

func TestDirectoryWriter_TagsTheCopy(t *testing.T) {
	srcDir, outDir := t.TempDir(), t.TempDir()
	path := newMP3(t, srcDir, "song.mp3")

	track, err := LoadTrack(path)
	if err != nil {
		t.Fatal(err)
	}

	w, err := NewDirectoryWriter(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteBPM(track, 128); err != nil {
		t.Fatalf("WriteBPM failed: %v", err)
	}

	// The copy carries the tag.
	copied, err := LoadTrack(filepath.Join(outDir, "song.mp3"))
	if err != nil {
		t.Fatalf("loading the copy failed: %v", err)
	}
	if bpm, ok := copied.BPM(); !ok || bpm != 128 {
		t.Errorf("copy BPM = %d, %v, want 128, true", bpm, ok)
	}

	// The original stays untagged on disk.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.HasPrefix(data, []byte("ID3")) {
		t.Error("the source file must not be modified")
	}
}

func TestNewDirectoryWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if _, err := NewDirectoryWriter(dir); err != nil {
		t.Fatalf("NewDirectoryWriter failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestFilterMissingBPM(t *testing.T) {
	dir := t.TempDir()
	tagged := newMP3(t, dir, "tagged.mp3")
	plainA := newMP3(t, dir, "a.mp3")
	plainB := newMP3(t, dir, "b.mp3")

	track, err := LoadTrack(tagged)
	if err != nil {
		t.Fatal(err)
	}
	if err := (InPlaceWriter{}).WriteBPM(track, 120); err != nil {
		t.Fatal(err)
	}

	got, err := FilterMissingBPM(context.Background(), []string{plainA, tagged, plainB})
	if err != nil {
		t.Fatalf("FilterMissingBPM failed: %v", err)
	}
	want := []string{plainA, plainB}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterMissingBPM = %v, want %v (input order preserved)", got, want)
	}
}

func TestFilterMissingBPM_UnsupportedInputAborts(t *testing.T) {
	dir := t.TempDir()
	ok := newMP3(t, dir, "ok.mp3")

	_, err := FilterMissingBPM(context.Background(), []string{ok, "song.wav"})
	if err == nil {
		t.Fatal("an unsupported input should abort the filter pass")
	}
	if !errors.Is(err, model.ErrUnsupportedFileType) {
		t.Errorf("error should wrap ErrUnsupportedFileType, got %v", err)
	}
}
