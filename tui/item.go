// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/icon"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/style"
	"github.com/livegrid/livegrid/util"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/viper"
)

// renderTile draws entry i so that it fills exactly r.
func (b *statefulBubble) renderTile(i int, entry grid.Entry, r grid.Rect) string {
	width, height := r.Right-r.Left, r.Bottom-r.Top
	active := b.grid.Active().OrEmpty() == entry.ID
	dragging := b.drag.DraggedIndex() == i

	inner := uint(util.Max(width-4, 1))
	cut := func(s string) string {
		return truncate.StringWithTail(s, inner, "…")
	}

	caption := entry.ID
	if viper.GetBool(key.GridShowChannel) {
		caption = b.title(entry.ID)
	}

	subtitle := entry.ID
	if viper.GetBool(key.GridShowURLs) {
		subtitle = entry.URL
	}

	lines := []string{
		style.Bold(cut(icon.Get(icon.Live) + " " + caption)),
		style.Faint(cut(subtitle)),
		cut(b.tileStatus(entry.ID, active, dragging)),
	}
	lines = lines[:util.Clamp(height-2, 1, len(lines))]

	tile := style.Tile(width, height, active, dragging)
	if i == b.cursor && b.state != inputState && !active && !dragging {
		tile = tile.BorderForeground(style.SecondaryColor)
	}

	return tile.Render(strings.Join(lines, "\n"))
}

func (b *statefulBubble) tileStatus(id string, active, dragging bool) string {
	var parts []string

	if active {
		parts = append(parts, icon.Get(icon.Active)+" active")
	}

	if b.grid.Muted(id) {
		parts = append(parts, icon.Get(icon.Muted)+" muted")
	} else {
		parts = append(parts, icon.Get(icon.Unmuted)+" sound")
	}

	if b.fullscreen[id] {
		parts = append(parts, icon.Get(icon.Fullscreen))
	}

	if dragging {
		parts = append(parts, icon.Get(icon.Drag)+" moving")
	}

	return strings.Join(parts, "  ")
}
