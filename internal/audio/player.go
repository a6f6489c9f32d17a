package audio

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Player starts playback of a file and hands back an opaque handle.
//
// The session never inspects playback progress; it only starts, stops
// or replaces the handle during transitions. Playback runs on its own
// (a child process or the audio device) while the session blocks on
// input.
type Player interface {
	Play(path string) (Playback, error)
}

// Playback is a handle for one running playback. Stop is synchronous:
// when it returns, the previous track is no longer audible and a new
// one may be started without overlap.
type Playback interface {
	Stop() error
}

// MPVPlayer plays files by spawning an external mpv process per track.
//
// This is the default backend: it needs no audio stack of its own and
// handles every format mpv does. The process inherits no stdio so it
// cannot interfere with the terminal the TUI owns.
type MPVPlayer struct {
	// Binary is the player executable, "mpv" by default.
	Binary string
}

// NewMPVPlayer returns a player using the given binary, falling back to
// "mpv" when empty.
func NewMPVPlayer(binary string) *MPVPlayer {
	if binary == "" {
		binary = "mpv"
	}
	return &MPVPlayer{Binary: binary}
}

// Play spawns the player process for path.
func (p *MPVPlayer) Play(path string) (Playback, error) {
	cmd := exec.Command(p.Binary, path, "--no-video")
	// Leave Stdin/Stdout/Stderr nil so they attach to the null device.
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", p.Binary, err)
	}
	logrus.WithFields(logrus.Fields{"pid": cmd.Process.Pid, "path": path}).Debug("playback started")
	return &mpvPlayback{cmd: cmd}, nil
}

type mpvPlayback struct {
	cmd *exec.Cmd
}

// Stop kills the player process and reaps it. A process that already
// exited on its own (track played to the end) is not an error.
func (pb *mpvPlayback) Stop() error {
	if err := pb.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill player: %w", err)
	}
	// Wait reports the kill as a process failure; that is expected.
	var exitErr *exec.ExitError
	if err := pb.cmd.Wait(); err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("reap player: %w", err)
	}
	return nil
}
