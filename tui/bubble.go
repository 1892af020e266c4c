// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/internal/ui"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/player"
	"github.com/livegrid/livegrid/style"
	"github.com/livegrid/livegrid/util"
	"github.com/livegrid/livegrid/youtube"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble is the whole interface state: focus, child components and the grid collaborators.
type statefulBubble struct {
	ctx           context.Context
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	spinnerC spinner.Model
	inputC   textinput.Model
	helpC    help.Model

	grid     *grid.Grid
	drag     *grid.Drag
	deck     *player.Deck
	resolver *youtube.Resolver
	api      youtube.API

	cursor     int
	pending    int // resolutions in flight
	inputError string
	suggestion mo.Option[string]
	titles     map[string]string
	fullscreen map[string]bool
	deckEvents chan tea.Msg

	width, height int
	notifier      *ui.Model
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)

	if s == inputState {
		b.inputC.Focus()
	} else {
		b.inputC.Blur()
	}
}

// newState switches state and remembers the previous one for previousState.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}
	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.helpC.Width = b.width
	b.inputC.Width = util.Max(b.width-lipgloss.Width(b.inputC.Prompt)-1, 10)
}

func (b *statefulBubble) columns() int {
	return util.Clamp(viper.GetInt(key.GridColumns), 1, 8)
}

// title is the caption of a tile and its player window.
func (b *statefulBubble) title(id string) string {
	if t, ok := b.titles[id]; ok && t != youtube.UnknownChannel {
		return t
	}
	return id
}

// selected is the entry under the keyboard cursor.
func (b *statefulBubble) selected() (grid.Entry, bool) {
	entries := b.grid.Entries()
	if len(entries) == 0 {
		return grid.Entry{}, false
	}
	b.cursor = util.Clamp(b.cursor, 0, len(entries)-1)
	return entries[b.cursor], true
}

func (b *statefulBubble) syncDeck() {
	b.deck.Sync(b.grid.Entries(), b.grid.Muted)
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	bubble := &statefulBubble{
		ctx:           ctx,
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		grid:          options.Grid,
		drag:          grid.NewDrag(options.Grid),
		resolver:      options.Resolver,
		api:           options.API,
		titles:        make(map[string]string),
		fullscreen:    make(map[string]bool),
		deckEvents:    make(chan tea.Msg, 16),
		notifier:      &ui.Model{},
		suggestion:    mo.None[string](),
	}

	bubble.deck = player.NewDeck(options.Factory, bubble.title)
	bubble.deck.OnMuteChange(func(id string, muted bool) {
		bubble.emit(muteChangedMsg{id: id, muted: muted})
	})
	bubble.deck.OnExit(func(id string) {
		bubble.emit(playerExitedMsg{id: id})
	})

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Paste YouTube live URL (watch?v=..., youtu.be/..., or /live)"
	bubble.inputC.CharLimit = 512
	bubble.inputC.Prompt = viper.GetString(key.InputPromptString)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	if options.StartInGrid && options.Grid.Len() > 0 {
		bubble.setState(gridState)
	} else {
		bubble.setState(inputState)
	}

	return bubble
}

// emit forwards deck callbacks, which run on player goroutines, into the update loop.
func (b *statefulBubble) emit(msg tea.Msg) {
	select {
	case b.deckEvents <- msg:
	case <-b.ctx.Done():
	}
}
