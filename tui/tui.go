// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/player"
	"github.com/livegrid/livegrid/youtube"
)

// Options wires the interface to its collaborators.
type Options struct {
	Grid     *grid.Grid
	Resolver *youtube.Resolver
	// API may be nil when no key is configured; channel titles are then unknown.
	API     youtube.API
	Factory player.Factory
	// StartInGrid focuses the grid instead of the URL input.
	StartInGrid bool
}

// Run starts the interface and blocks until the user quits. Every player is closed on return.
func Run(options *Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bubble := newBubble(ctx, options)
	defer bubble.deck.Close()

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
