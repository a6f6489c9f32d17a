package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// vorbisBPMKey is the comment key used for the tempo. The key match is
// case-sensitive: "bpm=120" is not recognized.
const vorbisBPMKey = "BPM"

// vorbisComment is the decoded body of a FLAC VORBIS_COMMENT metadata
// block: a vendor string followed by a list of "KEY=value" entries,
// both length-prefixed with little-endian uint32s.
type vorbisComment struct {
	Vendor   string
	Comments []string
}

// parseVorbisComment decodes the raw block body.
func parseVorbisComment(data []byte) (*vorbisComment, error) {
	r := bytes.NewReader(data)

	var vendorLen uint32
	if err := binary.Read(r, binary.LittleEndian, &vendorLen); err != nil {
		return nil, fmt.Errorf("vorbis comment vendor length: %w", err)
	}
	vendor := make([]byte, vendorLen)
	if _, err := io.ReadFull(r, vendor); err != nil {
		return nil, fmt.Errorf("vorbis comment vendor: %w", err)
	}

	var listLen uint32
	if err := binary.Read(r, binary.LittleEndian, &listLen); err != nil {
		return nil, fmt.Errorf("vorbis comment list length: %w", err)
	}

	comments := make([]string, listLen)
	for i := uint32(0); i < listLen; i++ {
		var commentLen uint32
		if err := binary.Read(r, binary.LittleEndian, &commentLen); err != nil {
			return nil, fmt.Errorf("vorbis comment %d length: %w", i, err)
		}
		comment := make([]byte, commentLen)
		if _, err := io.ReadFull(r, comment); err != nil {
			return nil, fmt.Errorf("vorbis comment %d: %w", i, err)
		}
		comments[i] = string(comment)
	}

	return &vorbisComment{Vendor: string(vendor), Comments: comments}, nil
}

// marshal encodes the comment block body back to its wire form.
func (vc *vorbisComment) marshal() []byte {
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.LittleEndian, uint32(len(vc.Vendor)))
	buf.WriteString(vc.Vendor)

	binary.Write(buf, binary.LittleEndian, uint32(len(vc.Comments)))
	for _, c := range vc.Comments {
		binary.Write(buf, binary.LittleEndian, uint32(len(c)))
		buf.WriteString(c)
	}
	return buf.Bytes()
}

// bpm returns the value of the first BPM entry, if present and numeric.
func (vc *vorbisComment) bpm() (uint, bool) {
	for _, c := range vc.Comments {
		key, value, found := strings.Cut(c, "=")
		if !found || key != vorbisBPMKey {
			continue
		}
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0, false
		}
		return uint(n), true
	}
	return 0, false
}

// setBPM replaces every BPM entry with exactly one carrying the decimal
// form of bpm.
func (vc *vorbisComment) setBPM(bpm uint) {
	kept := vc.Comments[:0]
	for _, c := range vc.Comments {
		key, _, found := strings.Cut(c, "=")
		if found && key == vorbisBPMKey {
			continue
		}
		kept = append(kept, c)
	}
	vc.Comments = append(kept, vorbisBPMKey+"="+strconv.FormatUint(uint64(bpm), 10))
}
