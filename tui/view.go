// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/livegrid/livegrid/constant"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/style"
	"github.com/livegrid/livegrid/util"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var sections []string

	if header := b.header(); header != "" {
		sections = append(sections, header, "")
	}

	sections = append(sections, b.viewGrid(b.layout()))

	if b.state != fullscreenState {
		sections = append(sections, "", b.statusLine(), b.helpC.View(b.keymap))
	}

	return b.notifier.View(paddingStyle.Render(strings.Join(sections, "\n")))
}

// header is everything above the tiles. Its height decides where tiles start.
func (b *statefulBubble) header() string {
	if b.state == fullscreenState {
		return ""
	}

	lines := []string{
		style.Title(constant.Livegrid),
		"",
		b.inputC.View(),
	}

	if b.pending > 0 {
		lines = append(lines, b.spinnerC.View()+" Checking "+util.Quantify(b.pending, "URL", "URLs")+"...")
	}

	if s, ok := b.suggestion.Get(); ok && b.state == inputState && s != b.inputC.Value() {
		lines = append(lines, style.Faint("tab "+icon.Get(icon.Link)+" "+s))
	}

	if b.inputError != "" {
		msg := wrap.String(icon.Get(icon.Fail)+" "+b.inputError, util.Max(b.width, 20))
		lines = append(lines, style.Fg(style.ErrorColor)(msg))
	}

	return strings.Join(lines, "\n")
}

// layout computes the screen rectangle of every tile, in grid order.
func (b *statefulBubble) layout() []grid.Rect {
	n := b.grid.Len()
	cols := b.columns()
	width := util.Max(b.width/cols, 16)
	height := util.Max(viper.GetInt(key.GridTileHeight), 4)

	top := paddingStyle.GetPaddingTop()
	left := paddingStyle.GetPaddingLeft()
	if header := b.header(); header != "" {
		top += lipgloss.Height(header) + 1
	}

	rects := make([]grid.Rect, n)
	for i := range rects {
		row, col := i/cols, i%cols
		x, y := left+col*width, top+row*height
		rects[i] = grid.Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
	}
	return rects
}

func (b *statefulBubble) viewGrid(rects []grid.Rect) string {
	entries := b.grid.Entries()
	if len(entries) == 0 {
		return style.Faint("No streams yet. Paste a live YouTube URL to start your grid.")
	}

	cols := b.columns()
	var rows []string
	for start := 0; start < len(entries); start += cols {
		end := util.Min(start+cols, len(entries))
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, b.renderTile(i, entries[i], rects[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *statefulBubble) statusLine() string {
	parts := []string{util.Quantify(b.grid.Len(), "stream", "streams")}

	if id, ok := b.grid.Active().Get(); ok {
		parts = append(parts, icon.Get(icon.Unmuted)+" "+b.title(id))
	}

	if b.resolver != nil && !b.resolver.HasCredential() {
		parts = append(parts, style.Fg(style.WarningColor)("no API key, liveness unchecked"))
	}

	return style.Faint(strings.Join(parts, " · "))
}
