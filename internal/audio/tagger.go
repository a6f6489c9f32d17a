package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bogem/id3v2"
	flac "github.com/go-flac/go-flac"
	"golang.org/x/sync/errgroup"

	ioutils "github.com/tapbeat/taptempo/internal/io"
	"github.com/tapbeat/taptempo/internal/model"
)

// id3BPMFrame is the ID3v2 text frame holding the tempo.
const id3BPMFrame = "TBPM"

// filterProbeLimit bounds the number of concurrent tag probes during
// input filtering.
const filterProbeLimit = 4

// LoadTrack resolves a path to a Track by detecting its tag format and
// probing the file for an existing BPM value.
//
// An absent tag container, an absent BPM field or a non-numeric BPM
// value all yield a track without a BPM; they are not errors. A
// malformed tag container is a hard error and aborts the load.
//
// Example:
//
//	track, err := audio.LoadTrack("song.mp3")
//	if err != nil {
//	    return err // unsupported extension or corrupt tag
//	}
//	bpm, ok := track.BPM()
func LoadTrack(path string) (*model.Track, error) {
	format, err := model.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	bpm, ok, err := readBPM(path, format)
	if err != nil {
		return nil, fmt.Errorf("read tag of %s: %w", path, err)
	}

	return model.NewTrack(path, format, bpm, ok), nil
}

// LoadTracks resolves every input path, failing on the first
// unsupported or corrupt file.
func LoadTracks(paths []string) ([]*model.Track, error) {
	tracks := make([]*model.Track, 0, len(paths))
	for _, path := range paths {
		track, err := LoadTrack(path)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// FilterMissingBPM returns, in input order, the paths whose files do not
// carry a BPM tag yet.
//
// The tag probes run concurrently. The first unsupported or corrupt
// input aborts the whole pass.
func FilterMissingBPM(ctx context.Context, paths []string) ([]string, error) {
	missing := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(filterProbeLimit)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			track, err := LoadTrack(path)
			if err != nil {
				return err
			}
			_, ok := track.BPM()
			missing[i] = !ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var kept []string
	for i, path := range paths {
		if missing[i] {
			kept = append(kept, path)
		}
	}
	return kept, nil
}

// readBPM reads the BPM field for the given format. The second return
// value reports whether a numeric BPM was present.
func readBPM(path string, format model.Format) (uint, bool, error) {
	switch format {
	case model.FormatID3:
		return readID3BPM(path)
	case model.FormatVorbis:
		return readFLACBPM(path)
	default:
		return 0, false, fmt.Errorf("%w: %s", model.ErrUnsupportedFileType, path)
	}
}

// writeBPM persists the BPM field for the given format. Both branches
// re-read the tag container fresh from disk, set the field to the
// decimal string form of bpm and write the whole container back. There
// is no atomicity across the read and the write.
func writeBPM(path string, format model.Format, bpm uint) error {
	switch format {
	case model.FormatID3:
		return writeID3BPM(path, bpm)
	case model.FormatVorbis:
		return writeFLACBPM(path, bpm)
	default:
		return fmt.Errorf("%w: %s", model.ErrUnsupportedFileType, path)
	}
}

func readID3BPM(path string) (uint, bool, error) {
	// A file without any ID3 tag parses as an empty tag, not an error.
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return 0, false, err
	}
	defer tag.Close()

	text := tag.GetTextFrame(id3BPMFrame).Text
	if text == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(n), true, nil
}

func writeID3BPM(path string, bpm uint) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag: %w", err)
	}
	defer tag.Close()

	tag.SetVersion(4)
	tag.AddTextFrame(id3BPMFrame, id3v2.EncodingUTF8, strconv.FormatUint(uint64(bpm), 10))

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag: %w", err)
	}
	return nil
}

func readFLACBPM(path string) (uint, bool, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return 0, false, err
	}

	block := findVorbisBlock(f)
	if block == nil {
		return 0, false, nil
	}

	cmts, err := parseVorbisComment(block.Data)
	if err != nil {
		return 0, false, err
	}

	bpm, ok := cmts.bpm()
	return bpm, ok, nil
}

func writeFLACBPM(path string, bpm uint) error {
	f, err := flac.ParseFile(path)
	if err != nil {
		return fmt.Errorf("parse flac: %w", err)
	}

	block := findVorbisBlock(f)
	if block == nil {
		block = &flac.MetaDataBlock{Type: flac.VorbisComment}
		block.Data = (&vorbisComment{}).marshal()
		f.Meta = append(f.Meta, block)
	}

	cmts, err := parseVorbisComment(block.Data)
	if err != nil {
		return fmt.Errorf("parse vorbis comments: %w", err)
	}
	cmts.setBPM(bpm)
	block.Data = cmts.marshal()

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save flac: %w", err)
	}
	return nil
}

func findVorbisBlock(f *flac.File) *flac.MetaDataBlock {
	for _, block := range f.Meta {
		if block.Type == flac.VorbisComment {
			return block
		}
	}
	return nil
}

// Writer persists a confirmed BPM for a track.
//
// Implementations decide which file receives the tag; on success they
// update the track's cached BPM so memory and disk stay consistent.
type Writer interface {
	WriteBPM(track *model.Track, bpm uint) error
}

// InPlaceWriter tags the input file itself.
type InPlaceWriter struct{}

// WriteBPM writes the tag to the track's own path.
func (InPlaceWriter) WriteBPM(track *model.Track, bpm uint) error {
	if err := writeBPM(track.Path(), track.Format(), bpm); err != nil {
		return err
	}
	track.SetCachedBPM(bpm)
	return nil
}

// DirectoryWriter copies the input file into a directory and tags the
// copy, leaving the original untouched.
type DirectoryWriter struct {
	dir string
}

// NewDirectoryWriter creates the output directory if needed and returns
// a writer targeting it.
func NewDirectoryWriter(dir string) (*DirectoryWriter, error) {
	if err := ioutils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &DirectoryWriter{dir: dir}, nil
}

// WriteBPM copies the track's file into the output directory and writes
// the tag on the copy.
func (w *DirectoryWriter) WriteBPM(track *model.Track, bpm uint) error {
	dst := filepath.Join(w.dir, filepath.Base(track.Path()))
	if err := ioutils.CopyFile(track.Path(), dst); err != nil {
		return fmt.Errorf("copy %s: %w", track.Path(), err)
	}
	if err := writeBPM(dst, track.Format(), bpm); err != nil {
		return err
	}
	track.SetCachedBPM(bpm)
	return nil
}
