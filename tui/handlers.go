// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/livegrid/livegrid/config"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/youtube"
	"github.com/samber/lo"
)

type resolvedMsg struct {
	raw        string
	resolution *youtube.Resolution
	title      string
	err        error
}

type titlesMsg map[string]string

type muteChangedMsg struct {
	id    string
	muted bool
}

type playerExitedMsg struct {
	id string
}

// resolve runs in the background. Several resolutions may be in flight;
// the duplicate check happens when the result arrives.
func (b *statefulBubble) resolve(raw string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(b.ctx, 2*config.Seconds(key.YouTubeTimeout))
		defer cancel()

		res, err := b.resolver.Resolve(ctx, raw)
		if err != nil {
			return resolvedMsg{raw: raw, err: err}
		}

		title := youtube.UnknownChannel
		if b.api != nil {
			title = b.api.ChannelTitle(ctx, res.ID)
		}
		return resolvedMsg{raw: raw, resolution: res, title: title}
	}
}

func (b *statefulBubble) hydrateTitles() tea.Cmd {
	ids := lo.Map(b.grid.Entries(), func(e grid.Entry, _ int) string { return e.ID })
	return func() tea.Msg {
		return titlesMsg(youtube.Titles(b.ctx, b.api, ids))
	}
}

func (b *statefulBubble) waitForDeckEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.deckEvents:
			return msg
		case <-b.ctx.Done():
			return nil
		}
	}
}
