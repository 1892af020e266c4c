// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/internal/ui"
	"github.com/livegrid/livegrid/log"
	"github.com/livegrid/livegrid/open"
	"github.com/livegrid/livegrid/query"
	"github.com/livegrid/livegrid/util"
	"github.com/livegrid/livegrid/youtube"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := b.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		cmds = append(cmds, cmd)
	case titlesMsg:
		for id, title := range msg {
			b.titles[id] = title
		}
		b.syncDeck()
	case resolvedMsg:
		cmds = append(cmds, b.onResolved(msg))
	case muteChangedMsg:
		b.grid.SetMuted(msg.id, msg.muted)
		cmds = append(cmds, b.waitForDeckEvent())
	case playerExitedMsg:
		cmds = append(cmds,
			ui.Notify(fmt.Sprintf("%s %s stopped playing", icon.Get(icon.Fail), b.title(msg.id))),
			b.waitForDeckEvent(),
		)
	case tea.MouseMsg:
		b.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		switch b.state {
		case inputState:
			cmds = append(cmds, b.updateInput(msg))
		case gridState, fullscreenState:
			cmds = append(cmds, b.updateGrid(msg))
		}
	default:
		var cmd tea.Cmd
		b.inputC, cmd = b.inputC.Update(msg)
		cmds = append(cmds, cmd)
	}

	return b, tea.Batch(cmds...)
}

func (b *statefulBubble) onResolved(msg resolvedMsg) tea.Cmd {
	b.pending = util.Max(b.pending-1, 0)

	if msg.err != nil {
		b.inputError = youtube.Message(msg.err)
		if errors.Is(msg.err, youtube.ErrNotLive) || errors.Is(msg.err, youtube.ErrNoLiveVideo) {
			if err := query.Forget(msg.raw); err != nil {
				log.Warnf("forget url: %v", err)
			}
		}
		return nil
	}

	res := msg.resolution
	if !b.grid.Insert(grid.Entry{ID: res.ID, URL: res.URL}) {
		b.inputError = youtube.Message(youtube.ErrDuplicate)
		return nil
	}

	b.titles[res.ID] = msg.title
	if strings.TrimSpace(b.inputC.Value()) == strings.TrimSpace(msg.raw) {
		b.inputC.SetValue("")
		b.suggestion = mo.None[string]()
	}

	if err := query.Remember(res.URL, 1); err != nil {
		log.Warnf("remember url: %v", err)
	}

	b.syncDeck()
	return ui.Notify(fmt.Sprintf("%s Added %s", icon.Get(icon.Success), b.title(res.ID)))
}

func (b *statefulBubble) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.submit):
		raw := b.inputC.Value()
		b.inputError = ""
		if strings.TrimSpace(raw) == "" {
			b.inputError = youtube.Message(youtube.ErrEmpty)
			return nil
		}
		b.pending++
		return b.resolve(raw)
	case key.Matches(msg, b.keymap.acceptSuggestion) && b.canAcceptSuggestion():
		b.inputC.SetValue(b.suggestion.MustGet())
		b.inputC.CursorEnd()
		return nil
	case key.Matches(msg, b.keymap.focusGrid):
		if b.grid.Len() > 0 {
			b.setState(gridState)
		}
		return nil
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)

	if value := strings.TrimSpace(b.inputC.Value()); value != "" {
		b.suggestion = query.Suggest(value)
	} else {
		b.suggestion = mo.None[string]()
	}
	return cmd
}

func (b *statefulBubble) canAcceptSuggestion() bool {
	s, ok := b.suggestion.Get()
	return ok && b.inputC.Value() != "" && s != b.inputC.Value()
}

func (b *statefulBubble) updateGrid(msg tea.KeyMsg) tea.Cmd {
	k := b.keymap

	switch {
	case key.Matches(msg, k.quit):
		return tea.Quit
	case b.state == fullscreenState && key.Matches(msg, k.back):
		b.previousState()
		return nil
	case b.state == gridState && key.Matches(msg, k.gridFullscreen):
		b.newState(fullscreenState)
		return nil
	case b.state == gridState && key.Matches(msg, k.focusInput):
		b.setState(inputState)
		return nil
	case key.Matches(msg, k.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil
	case key.Matches(msg, k.left):
		b.moveCursor(-1)
	case key.Matches(msg, k.right):
		b.moveCursor(1)
	case key.Matches(msg, k.up):
		b.moveCursor(-b.columns())
	case key.Matches(msg, k.down):
		b.moveCursor(b.columns())
	case key.Matches(msg, k.moveUp):
		b.moveSelected(-1)
	case key.Matches(msg, k.moveDown):
		b.moveSelected(1)
	}

	entry, ok := b.selected()
	if !ok {
		return nil
	}

	switch {
	case key.Matches(msg, k.activate):
		b.grid.Select(entry.ID)
		b.syncDeck()
	case key.Matches(msg, k.mute):
		b.grid.ToggleMute(entry.ID)
		b.syncDeck()
	case key.Matches(msg, k.remove):
		return b.removeEntry(entry)
	case key.Matches(msg, k.fullscreen):
		on := !b.fullscreen[entry.ID]
		if err := b.deck.SetFullscreen(entry.ID, on); err != nil {
			log.Warnf("fullscreen %s: %v", entry.ID, err)
			return ui.Notify(icon.Get(icon.Fail) + " " + err.Error())
		}
		b.fullscreen[entry.ID] = on
	case key.Matches(msg, k.openURL):
		if err := open.Start(entry.URL); err != nil {
			return ui.Notify(icon.Get(icon.Fail) + " " + err.Error())
		}
	}

	return nil
}

func (b *statefulBubble) removeEntry(entry grid.Entry) tea.Cmd {
	b.grid.Remove(entry.ID)
	delete(b.fullscreen, entry.ID)
	b.syncDeck()

	if b.grid.Len() == 0 {
		b.statesHistory.Clear()
		b.setState(inputState)
	}

	return ui.Notify(fmt.Sprintf("Removed %s", b.title(entry.ID)))
}

func (b *statefulBubble) moveCursor(delta int) {
	if n := b.grid.Len(); n > 0 {
		b.cursor = util.Clamp(b.cursor+delta, 0, n-1)
	}
}

// moveSelected shifts the tile under the cursor one slot and keeps the cursor on it.
func (b *statefulBubble) moveSelected(delta int) {
	to := b.cursor + delta
	if to < 0 || to >= b.grid.Len() {
		return
	}
	b.grid.Reorder(b.cursor, to)
	b.cursor = to
}

// handleMouse selects on click and reorders live while the left button is held.
func (b *statefulBubble) handleMouse(msg tea.MouseMsg) {
	p := grid.Point{X: msg.X, Y: msg.Y}
	rects := b.layout()
	hit := hitTest(rects, p)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || hit < 0 {
			return
		}

		entries := b.grid.Entries()
		b.cursor = hit
		b.grid.Select(entries[hit].ID)
		b.syncDeck()
		if b.state == inputState {
			b.setState(gridState)
		}

		b.drag.Begin(hit)
		b.drag.Move(p)
	case tea.MouseActionMotion:
		if !b.drag.Dragging() {
			return
		}

		b.drag.Move(p)
		if hit >= 0 && b.drag.Hover(hit, rects[hit]) {
			b.cursor = b.drag.DraggedIndex()
		}
	case tea.MouseActionRelease:
		b.drag.Drop()
	}
}

func hitTest(rects []grid.Rect, p grid.Point) int {
	for i, r := range rects {
		if r.Contains(p) {
			return i
		}
	}
	return -1
}
