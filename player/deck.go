package player

import (
	"sync"

	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/log"
	"github.com/samber/lo"
)

// Deck owns exactly one Player per grid entry. Players are never rebuilt
// for an entry that is still present, so reordering doesn't restart streams.
// A player that exited or failed to start stays gone until its entry leaves the grid.
type Deck struct {
	mu      sync.Mutex
	factory Factory
	title   func(id string) string
	players map[string]Player
	retired map[string]struct{}
	wanted  map[string]bool // desired mute state
	applied map[string]bool // mute state last sent to a ready player
	onMute  func(id string, muted bool)
	onExit  func(id string)
}

// NewDeck creates an empty deck. title supplies window titles and may be nil.
func NewDeck(factory Factory, title func(id string) string) *Deck {
	if title == nil {
		title = func(id string) string { return id }
	}
	return &Deck{
		factory: factory,
		title:   title,
		players: make(map[string]Player),
		retired: make(map[string]struct{}),
		wanted:  make(map[string]bool),
		applied: make(map[string]bool),
	}
}

// OnMuteChange registers fn for mute toggles made inside a player window.
func (d *Deck) OnMuteChange(fn func(id string, muted bool)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onMute = fn
}

// OnExit registers fn for players whose process ended on its own.
func (d *Deck) OnExit(fn func(id string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onExit = fn
}

// Sync brings the set of players in line with entries and pushes mute state.
// Mute state reaches a player only after it signalled Ready.
func (d *Deck) Sync(entries []grid.Entry, muted func(id string) bool) {
	d.mu.Lock()

	present := lo.SliceToMap(entries, func(e grid.Entry) (string, struct{}) {
		return e.ID, struct{}{}
	})

	for id := range d.retired {
		if _, ok := present[id]; !ok {
			delete(d.retired, id)
		}
	}

	var stale []Player
	for id, p := range d.players {
		if _, ok := present[id]; !ok {
			stale = append(stale, p)
			delete(d.players, id)
			delete(d.wanted, id)
			delete(d.applied, id)
		}
	}

	for _, entry := range entries {
		d.wanted[entry.ID] = muted(entry.ID)

		if _, ok := d.players[entry.ID]; ok {
			d.applyLocked(entry.ID)
			continue
		}
		if _, ok := d.retired[entry.ID]; ok {
			continue
		}

		p := d.factory()
		if obs, ok := p.(MuteObserver); ok {
			id := entry.ID
			obs.ObserveMute(func(m bool) { d.reportMute(id, m) })
		}

		if err := p.Start(entry.URL, d.title(entry.ID)); err != nil {
			log.With(log.Fields{"id": entry.ID, "url": entry.URL}).Errorf("start player: %v", err)
			d.retired[entry.ID] = struct{}{}
			continue
		}

		d.players[entry.ID] = p
		go d.watch(entry.ID, p)
	}
	d.mu.Unlock()

	for _, p := range stale {
		go closePlayer(p)
	}
}

func (d *Deck) watch(id string, p Player) {
	select {
	case <-p.Ready():
	case <-p.Wait():
		d.exited(id, p)
		return
	}

	d.mu.Lock()
	if d.players[id] == p {
		d.applyLocked(id)
	}
	d.mu.Unlock()

	<-p.Wait()
	d.exited(id, p)
}

func (d *Deck) exited(id string, p Player) {
	d.mu.Lock()
	current := d.players[id] == p
	if current {
		delete(d.players, id)
		delete(d.applied, id)
		d.retired[id] = struct{}{}
	}
	fn := d.onExit
	d.mu.Unlock()

	if current && fn != nil {
		fn(id)
	}
}

func (d *Deck) reportMute(id string, muted bool) {
	d.mu.Lock()
	if _, ok := d.players[id]; !ok {
		d.mu.Unlock()
		return
	}
	d.wanted[id] = muted
	d.applied[id] = muted
	fn := d.onMute
	d.mu.Unlock()

	if fn != nil {
		fn(id, muted)
	}
}

func (d *Deck) applyLocked(id string) {
	p := d.players[id]
	select {
	case <-p.Ready():
	default:
		return
	}

	want := d.wanted[id]
	if got, ok := d.applied[id]; ok && got == want {
		return
	}

	var err error
	if want {
		err = p.Mute()
	} else {
		err = p.Unmute()
	}
	if err != nil {
		log.Warnf("set mute=%t on %s: %v", want, id, err)
		return
	}
	d.applied[id] = want
}

// SetFullscreen toggles the window of a single tile.
func (d *Deck) SetFullscreen(id string, on bool) error {
	d.mu.Lock()
	p, ok := d.players[id]
	d.mu.Unlock()

	if !ok {
		return nil
	}
	return p.SetFullscreen(on)
}

// Player returns the player for id, if any.
func (d *Deck) Player(id string) (Player, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.players[id]
	return p, ok
}

// Len is the number of live players.
func (d *Deck) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.players)
}

// Close shuts every player down and waits for them.
func (d *Deck) Close() {
	d.mu.Lock()
	players := lo.Values(d.players)
	clear(d.players)
	clear(d.retired)
	clear(d.wanted)
	clear(d.applied)
	d.mu.Unlock()

	var wg sync.WaitGroup
	for _, p := range players {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			closePlayer(p)
		}()
	}
	wg.Wait()
}

func closePlayer(p Player) {
	if err := p.Close(); err != nil {
		log.Warnf("close player: %v", err)
	}
}
