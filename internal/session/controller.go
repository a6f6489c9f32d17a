package session

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tapbeat/taptempo/internal/audio"
	"github.com/tapbeat/taptempo/internal/model"
)

// msPerMinute converts a tap interval in milliseconds into an
// instantaneous BPM sample.
const msPerMinute = 60000.0

const maxUint = ^uint(0)

// Config carries the session's behavior switches.
type Config struct {
	// RequireConfirm makes a Confirm in browsing mode go through the
	// reviewing popup instead of writing immediately.
	RequireConfirm bool
}

// Controller is the session state machine.
//
// It owns the playlist position, the active tap window, the last-tap
// timestamp and the running playback handle, and consumes one Command
// per loop iteration. Transitions are atomic: a command either applies
// fully or not at all.
//
// The controller is single-threaded by construction; it is driven from
// one event loop and never shares state across goroutines.
type Controller struct {
	playlist       *model.Playlist
	player         audio.Player
	writer         audio.Writer
	requireConfirm bool

	mode      Mode
	window    Window
	lastTap   time.Time
	tapped    bool
	candidate uint
	manual    uint

	playback audio.Playback

	// now is the tap clock, replaceable in tests.
	now func() time.Time
}

// NewController creates a controller in browsing mode on the first
// playlist track. Playback does not start until Start is called.
func NewController(playlist *model.Playlist, player audio.Player, writer audio.Writer, cfg Config) *Controller {
	return &Controller{
		playlist:       playlist,
		player:         player,
		writer:         writer,
		requireConfirm: cfg.RequireConfirm,
		now:            time.Now,
	}
}

// Start begins playback of the current track. A playback backend that
// fails to start is fatal.
func (c *Controller) Start() error {
	return c.restartPlayback()
}

// Shutdown releases the playback handle if one is active. It is safe
// to call on every exit path, including after Quit already stopped
// playback.
func (c *Controller) Shutdown() {
	c.stopPlayback()
}

// Mode returns the active interaction mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Playlist returns the session's playlist.
func (c *Controller) Playlist() *model.Playlist {
	return c.playlist
}

// Average returns the current tap window estimate.
func (c *Controller) Average() (uint, bool) {
	return c.window.Average()
}

// TapCount returns how many samples the tap window holds.
func (c *Controller) TapCount() int {
	return c.window.Count()
}

// Candidate returns the BPM awaiting confirmation in reviewing mode.
func (c *Controller) Candidate() uint {
	return c.candidate
}

// ManualValue returns the digits accumulated so far in manual entry.
func (c *Controller) ManualValue() uint {
	return c.manual
}

// Apply processes one command. It returns true when the session is
// over (quit), and a non-nil error on any unrecoverable failure, which
// unwinds the session immediately.
func (c *Controller) Apply(cmd Command) (bool, error) {
	switch c.mode {
	case ModeBrowsing:
		return c.applyBrowsing(cmd)
	case ModeReviewing:
		return false, c.applyReviewing(cmd)
	case ModeManualEntry:
		return false, c.applyManual(cmd)
	}
	return false, nil
}

func (c *Controller) applyBrowsing(cmd Command) (bool, error) {
	switch cmd.Kind {
	case CmdTap:
		now := c.now()
		if c.tapped {
			// The first tap after a reset has no interval yet and only
			// records a timestamp.
			ms := now.Sub(c.lastTap).Milliseconds()
			if ms > 0 {
				c.window.Push(msPerMinute / float64(ms))
			}
		}
		c.lastTap = now
		c.tapped = true

	case CmdRestart:
		return false, c.restartPlayback()

	case CmdNext:
		if c.playlist.Len() > 1 {
			c.playlist.Next()
			return false, c.restartPlayback()
		}

	case CmdPrev:
		if c.playlist.Len() > 1 {
			c.playlist.Prev()
			return false, c.restartPlayback()
		}

	case CmdConfirm:
		avg, ok := c.window.Average()
		if !ok {
			return false, nil
		}
		if c.requireConfirm {
			c.candidate = avg
			c.mode = ModeReviewing
			return false, nil
		}
		return false, c.writeAndAdvance(avg)

	case CmdEnterManual:
		c.manual = 0
		c.mode = ModeManualEntry

	case CmdQuit:
		c.stopPlayback()
		return true, nil
	}
	return false, nil
}

func (c *Controller) applyReviewing(cmd Command) error {
	switch cmd.Kind {
	case CmdYes:
		bpm := c.candidate
		c.candidate = 0
		c.mode = ModeBrowsing
		return c.writeAndAdvance(bpm)

	case CmdNo:
		// Discard the candidate and keep listening to the same track;
		// playback and the tap window are untouched.
		c.candidate = 0
		c.mode = ModeBrowsing
	}
	return nil
}

func (c *Controller) applyManual(cmd Command) error {
	switch cmd.Kind {
	case CmdDigit:
		if v := c.manual; v < maxUint/10 || (v == maxUint/10 && cmd.Digit <= maxUint%10) {
			c.manual = v*10 + cmd.Digit
		}
		// Past the representable maximum the value stays unchanged.

	case CmdBackspace:
		c.manual /= 10

	case CmdConfirm:
		bpm := c.manual
		c.manual = 0
		c.mode = ModeBrowsing
		return c.writeAndAdvance(bpm)

	case CmdCancel:
		c.manual = 0
		c.mode = ModeBrowsing
	}
	return nil
}

// writeAndAdvance persists bpm for the current track, then moves to the
// next one (wrapping), restarts playback and resets the tap state.
// Exactly one tag write happens per confirmation.
func (c *Controller) writeAndAdvance(bpm uint) error {
	track := c.playlist.Current()
	if err := c.writer.WriteBPM(track, bpm); err != nil {
		return fmt.Errorf("write bpm %d for %s: %w", bpm, track.Path(), err)
	}
	logrus.WithFields(logrus.Fields{"path": track.Path(), "bpm": bpm}).Info("bpm saved")

	c.playlist.Next()
	return c.restartPlayback()
}

// restartPlayback stops the running playback, starts the current track
// from the beginning and resets the tap window and timestamp.
func (c *Controller) restartPlayback() error {
	c.stopPlayback()

	track := c.playlist.Current()
	playback, err := c.player.Play(track.Path())
	if err != nil {
		return fmt.Errorf("play %s: %w", track.Path(), err)
	}
	c.playback = playback

	c.window.Reset()
	c.tapped = false
	return nil
}

// stopPlayback releases the active handle. The stop is synchronous, so
// the next Play never overlaps the previous track's audio. A failed
// stop is logged but doesn't unwind the session.
func (c *Controller) stopPlayback() {
	if c.playback == nil {
		return
	}
	if err := c.playback.Stop(); err != nil {
		logrus.WithError(err).Warn("stop playback")
	}
	c.playback = nil
}
