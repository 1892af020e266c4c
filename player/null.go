package player

import "sync"

// Null is a player without a window. It is used for a headless grid.
type Null struct {
	mu         sync.Mutex
	url        string
	muted      bool
	fullscreen bool
	ready      chan struct{}
	exited     chan struct{}
	closeOnce  sync.Once
}

func NewNull() *Null {
	return &Null{
		muted:  true,
		ready:  make(chan struct{}),
		exited: make(chan struct{}),
	}
}

func (n *Null) Start(url, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.url == "" {
		close(n.ready)
	}
	n.url = url
	return nil
}

func (n *Null) Ready() <-chan struct{} { return n.ready }
func (n *Null) Wait() <-chan struct{}  { return n.exited }

func (n *Null) Mute() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.muted = true
	return nil
}

func (n *Null) Unmute() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.muted = false
	return nil
}

func (n *Null) SetFullscreen(on bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fullscreen = on
	return nil
}

// Muted reports the last requested mute state.
func (n *Null) Muted() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.muted
}

func (n *Null) Fullscreen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.fullscreen
}

func (n *Null) URL() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.url
}

func (n *Null) Close() error {
	n.closeOnce.Do(func() { close(n.exited) })
	return nil
}
