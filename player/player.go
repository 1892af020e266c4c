// Package player drives one external video player per grid tile.
// The primary backend is mpv, controlled through its JSON-IPC socket.
package player

import (
	"fmt"
	"strings"
)

// Player is a single playback window.
type Player interface {
	// Start launches playback. It returns once the process is running;
	// Ready fires later when the player accepts commands.
	Start(url, title string) error

	// Ready is closed once the player accepts commands. It never fires if startup fails.
	Ready() <-chan struct{}

	Mute() error
	Unmute() error
	SetFullscreen(on bool) error

	// Close terminates the player and releases its resources.
	Close() error

	// Wait is closed when the player process exits.
	Wait() <-chan struct{}
}

// MuteObserver is implemented by players that report mute changes made in their own window.
type MuteObserver interface {
	ObserveMute(fn func(muted bool))
}

// Factory builds an unstarted player.
type Factory func() Player

const (
	BackendMPV  = "mpv"
	BackendNone = "none"
)

// Backends lists the accepted values of player.default.
var Backends = []string{BackendMPV, BackendNone}

// NewFactory returns the constructor for the named backend.
func NewFactory(name string) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BackendMPV, "":
		return func() Player { return NewMPV() }, nil
	case BackendNone:
		return func() Player { return NewNull() }, nil
	default:
		return nil, fmt.Errorf("unknown player %q, expected one of %s", name, strings.Join(Backends, ", "))
	}
}
