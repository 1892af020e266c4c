// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/livegrid/livegrid/color"
	"github.com/livegrid/livegrid/style"
)

// statefulKeymap holds the bindings and knows which of them apply to the current state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	submit, acceptSuggestion, focusGrid, focusInput,
	up, down, left, right,
	activate, mute, remove,
	fullscreen, gridFullscreen, back,
	moveUp, moveDown,
	openURL,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Orange)("enter"), style.Fg(color.Orange)("add video")),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		focusGrid: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "grid"),
		),
		focusInput: key.NewBinding(
			key.WithKeys("tab", "a", "/"),
			key.WithHelp("a", "add url"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "make active"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		gridFullscreen: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "grid only"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "F"),
			key.WithHelp("esc", "back"),
		),
		moveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move back"),
		),
		moveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move forward"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	switch k.state {
	case inputState:
		return h(k.submit, k.focusGrid, k.forceQuit),
			h(k.submit, k.acceptSuggestion, k.focusGrid, k.forceQuit)
	case gridState:
		return h(k.activate, k.mute, k.remove, k.focusInput, k.showHelp, k.quit),
			h(k.up, k.down, k.left, k.right, k.activate, k.mute, k.remove,
				k.moveUp, k.moveDown, k.fullscreen, k.gridFullscreen, k.openURL, k.focusInput, k.quit)
	case fullscreenState:
		return h(k.back, k.quit), h(k.back, k.activate, k.mute, k.fullscreen, k.quit)
	default:
		return h(), h()
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
