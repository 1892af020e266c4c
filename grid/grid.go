// Package grid holds the ordered collection of live streams shown on screen,
// the active selection and per-tile mute flags.
package grid

import (
	"slices"
	"sync"

	"github.com/livegrid/livegrid/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Entry is a resolved stream. ID is the YouTube video id and identifies the entry;
// URL is what gets persisted.
type Entry struct {
	ID  string `json:"id" jsonschema:"description=YouTube video id"`
	URL string `json:"url" jsonschema:"description=URL the entry was added with"`
}

// Grid is safe for concurrent use. Change listeners run after the lock is released.
type Grid struct {
	mu        sync.RWMutex
	entries   []Entry
	active    mo.Option[string]
	muted     map[string]bool
	listeners []func(urls []string)
}

func New() *Grid {
	return &Grid{
		active: mo.None[string](),
		muted:  make(map[string]bool),
	}
}

// OnChange registers fn to receive the entry URLs after every insert, remove and reorder.
func (g *Grid) OnChange(fn func(urls []string)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, fn)
}

func (g *Grid) notify() {
	g.mu.RLock()
	urls := g.urls()
	listeners := slices.Clone(g.listeners)
	g.mu.RUnlock()

	for _, fn := range listeners {
		fn(urls)
	}
}

// Load replaces the contents without notifying listeners. Later duplicates are dropped.
func (g *Grid) Load(entries []Entry) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.entries = lo.UniqBy(entries, func(e Entry) string { return e.ID })
	g.muted = make(map[string]bool, len(g.entries))
	for _, e := range g.entries {
		g.muted[e.ID] = true
	}

	g.active = mo.None[string]()
	if len(g.entries) > 0 {
		g.activate(g.entries[0].ID)
	}
}

// Insert appends entry unless its ID is already present.
func (g *Grid) Insert(entry Entry) bool {
	g.mu.Lock()
	if g.indexOf(entry.ID) >= 0 {
		g.mu.Unlock()
		return false
	}

	g.entries = append(g.entries, entry)
	g.muted[entry.ID] = true
	if len(g.entries) == 1 {
		g.activate(entry.ID)
	}
	g.mu.Unlock()

	g.notify()
	return true
}

// Remove deletes the entry with id. Removing the active entry activates the new first one.
func (g *Grid) Remove(id string) {
	g.mu.Lock()
	i := g.indexOf(id)
	if i < 0 {
		g.mu.Unlock()
		return
	}

	g.entries = slices.Delete(g.entries, i, i+1)
	delete(g.muted, id)

	if g.active.OrEmpty() == id {
		g.active = mo.None[string]()
		if len(g.entries) > 0 {
			g.activate(g.entries[0].ID)
		}
	}
	g.mu.Unlock()

	g.notify()
}

// Reorder moves the entry at from to position to, shifting the ones in between.
func (g *Grid) Reorder(from, to int) {
	g.mu.Lock()
	if from == to {
		g.mu.Unlock()
		return
	}
	if from < 0 || from >= len(g.entries) || to < 0 || to >= len(g.entries) {
		n := len(g.entries)
		g.mu.Unlock()
		log.With(log.Fields{"from": from, "to": to, "len": n}).Warn("reorder out of range")
		return
	}

	moved := g.entries[from]
	g.entries = slices.Delete(g.entries, from, from+1)
	g.entries = slices.Insert(g.entries, to, moved)
	g.mu.Unlock()

	g.notify()
}

// Select makes id the active entry. Unknown ids are ignored.
func (g *Grid) Select(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.indexOf(id) < 0 {
		return
	}
	g.activate(id)
}

// activate unmutes id and mutes only the previously active entry.
func (g *Grid) activate(id string) {
	if prev, ok := g.active.Get(); ok {
		if prev == id {
			return
		}
		if _, exists := g.muted[prev]; exists {
			g.muted[prev] = true
		}
	}
	g.active = mo.Some(id)
	g.muted[id] = false
}

// ToggleMute flips the mute flag of id without touching the active selection.
func (g *Grid) ToggleMute(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if m, ok := g.muted[id]; ok {
		g.muted[id] = !m
	}
}

// SetMuted records a mute state reported from outside, such as the player window.
func (g *Grid) SetMuted(id string, muted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.muted[id]; ok {
		g.muted[id] = muted
	}
}

// Muted reports the mute flag of id. Unknown ids are muted.
func (g *Grid) Muted(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, ok := g.muted[id]
	return !ok || m
}

func (g *Grid) Active() mo.Option[string] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.active
}

// Entries returns a copy of the ordered entries.
func (g *Grid) Entries() []Entry {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.entries)
}

func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.entries)
}

// IndexOf returns the position of id, or -1.
func (g *Grid) IndexOf(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.indexOf(id)
}

func (g *Grid) indexOf(id string) int {
	return slices.IndexFunc(g.entries, func(e Entry) bool { return e.ID == id })
}

// Contains reports whether an entry with id exists.
func (g *Grid) Contains(id string) bool {
	return g.IndexOf(id) >= 0
}

// URLs is the persisted form of the grid.
func (g *Grid) URLs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.urls()
}

func (g *Grid) urls() []string {
	return lo.Map(g.entries, func(e Entry, _ int) string { return e.URL })
}
