package player

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/log"
	"github.com/livegrid/livegrid/where"
	"github.com/spf13/viper"
)

const (
	socketWaitRetries = 40
	socketWaitDelay   = 250 * time.Millisecond
	closeTimeout      = 3 * time.Second
)

// MPV plays one stream in its own mpv window. It starts muted.
type MPV struct {
	binary     string
	flags      []string
	socketPath string
	cmd        *exec.Cmd
	ready      chan struct{}
	exited     chan struct{}
	mu         sync.Mutex // serializes IPC writes
	events     *EventListener
	onMute     func(bool)
	closeOnce  sync.Once
}

func NewMPV() *MPV {
	return &MPV{
		binary: BackendMPV,
		flags:  viper.GetStringSlice(key.PlayerMPVFlags),
		ready:  make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// ObserveMute registers fn for mute changes made in the mpv window. Call before Start.
func (m *MPV) ObserveMute(fn func(muted bool)) {
	m.onMute = fn
}

func (m *MPV) Start(rawURL, title string) error {
	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("mpv-%x.sock", randomBytes))
	}

	m.cmd = exec.Command(m.binary, m.args(safeURL, sanitizeTitle(title))...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	go m.awaitSocket()
	return nil
}

// args leaves vo, hwdec and profiles to the user's mpv.conf.
func (m *MPV) args(target, title string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--force-media-title=%s", title),
		fmt.Sprintf("--title=%s", title),
		"--force-window=yes",
		"--mute=yes",
		"--keep-open=yes",
	}

	for _, flag := range m.flags {
		if flag = strings.TrimSpace(flag); flag != "" {
			args = append(args, flag)
		}
	}

	// "--" keeps the target from being parsed as an option
	return append(args, "--", target)
}

func (m *MPV) awaitSocket() {
	if err := m.waitForSocket(); err != nil {
		log.Warnf("mpv %s: %v", m.socketPath, err)
		select {
		case <-m.exited:
		default:
			_ = killProcess(m.cmd)
		}
		return
	}

	close(m.ready)

	if m.onMute == nil {
		return
	}

	m.events = NewEventListener(m.socketPath, []string{"mute"}, func(property string, data any) {
		if muted, ok := data.(bool); ok && property == "mute" {
			m.onMute(muted)
		}
	})
	if err := m.events.Start(); err != nil {
		log.Warnf("mpv events: %v", err)
	}
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket not ready after %d attempts", socketWaitRetries)
}

func (m *MPV) Ready() <-chan struct{} { return m.ready }
func (m *MPV) Wait() <-chan struct{}  { return m.exited }

func (m *MPV) Mute() error   { return m.Set("mute", true) }
func (m *MPV) Unmute() error { return m.Set("mute", false) }

func (m *MPV) SetFullscreen(on bool) error {
	return m.Set("fullscreen", on)
}

// Set writes an mpv property.
func (m *MPV) Set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

// IsRunning reports whether mpv answers IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]any{"get_property", "pid"})
	return err == nil
}

// Socket is the IPC socket path, empty before Start.
func (m *MPV) Socket() string {
	return m.socketPath
}

func (m *MPV) Close() error {
	if m.cmd == nil {
		return nil
	}

	m.closeOnce.Do(func() {
		if m.events != nil {
			m.events.Stop()
		}

		_, _ = m.sendCommand([]any{"quit"})

		select {
		case <-m.exited:
		case <-time.After(closeTimeout):
			_ = killProcess(m.cmd)
		}

		_ = os.Remove(m.socketPath)
	})
	return nil
}

// sanitizeMediaTarget accepts http(s) URLs only; anything else could be read as a flag or local file.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", errors.New("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", errors.New("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", errors.New("url must not start with '-'")
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
