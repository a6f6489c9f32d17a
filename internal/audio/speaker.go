package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	beepflac "github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/tapbeat/taptempo/internal/model"
)

// resampleQuality trades CPU for interpolation quality when a file's
// sample rate differs from the one the speaker was initialized with.
const resampleQuality = 4

// SpeakerPlayer decodes files in-process and plays them through the
// system audio device.
//
// The device is initialized once, with the sample rate of the first
// track; later tracks with a different rate are resampled. Only one
// playback is active at a time, which matches the session's
// stop-before-start contract.
type SpeakerPlayer struct {
	initialized bool
	sampleRate  beep.SampleRate
}

// NewSpeakerPlayer returns an uninitialized speaker backend. The audio
// device is opened lazily on the first Play call.
func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{}
}

// Play decodes path and starts streaming it to the speaker.
func (p *SpeakerPlayer) Play(path string) (Playback, error) {
	format, err := model.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// Closing the streamer closes the file as well.
	var streamer beep.StreamSeekCloser
	var streamFormat beep.Format
	switch format {
	case model.FormatID3:
		streamer, streamFormat, err = mp3.Decode(f)
	case model.FormatVorbis:
		streamer, streamFormat, err = beepflac.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if !p.initialized {
		if err := speaker.Init(streamFormat.SampleRate, streamFormat.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return nil, fmt.Errorf("init speaker: %w", err)
		}
		p.sampleRate = streamFormat.SampleRate
		p.initialized = true
	}

	var out beep.Streamer = streamer
	if streamFormat.SampleRate != p.sampleRate {
		out = beep.Resample(resampleQuality, streamFormat.SampleRate, p.sampleRate, streamer)
	}

	speaker.Play(out)
	return &speakerPlayback{streamer: streamer}, nil
}

type speakerPlayback struct {
	streamer beep.StreamSeekCloser
}

// Stop silences the speaker and releases the decoder. Clear must run
// before taking the speaker lock; it locks internally.
func (pb *speakerPlayback) Stop() error {
	speaker.Clear()

	speaker.Lock()
	err := pb.streamer.Close()
	speaker.Unlock()
	return err
}
