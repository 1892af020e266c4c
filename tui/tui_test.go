package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/livegrid/livegrid/filesystem"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/player"
	"github.com/livegrid/livegrid/youtube"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.GridColumns, 1)
	viper.Set(key.GridTileHeight, 6)
	viper.Set(key.InputPromptString, "> ")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func ids(g *grid.Grid) []string {
	var out []string
	for _, e := range g.Entries() {
		out = append(out, e.ID)
	}
	return out
}

func newTestBubble(entries ...string) (*statefulBubble, context.CancelFunc) {
	g := grid.New()
	for _, id := range entries {
		g.Insert(grid.Entry{ID: id, URL: youtube.WatchURL(id)})
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := newBubble(ctx, &Options{
		Grid:     g,
		Resolver: youtube.NewResolver(nil),
		Factory:  func() player.Player { return player.NewNull() },
	})
	b.resize(84, 60)
	return b, func() {
		b.deck.Close()
		cancel()
	}
}

func TestInput(t *testing.T) {
	Convey("Given the URL input", t, func() {
		b, done := newTestBubble()
		defer done()
		So(b.state, ShouldEqual, inputState)

		Convey("Submitting nothing shows the empty message", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(b.inputError, ShouldEqual, "Please enter a URL")
			So(b.pending, ShouldEqual, 0)
		})

		Convey("Submitting a URL resolves it in the background", func() {
			b.inputC.SetValue("https://youtu.be/abc")
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(cmd, ShouldNotBeNil)
			So(b.pending, ShouldEqual, 1)

			msg := b.resolve("https://youtu.be/abc")()
			b.Update(msg)
			So(b.pending, ShouldEqual, 0)
			So(ids(b.grid), ShouldResemble, []string{"abc"})
			So(b.inputC.Value(), ShouldBeEmpty)
			So(b.deck.Len(), ShouldEqual, 1)

			Convey("And the same video again is a duplicate", func() {
				b.Update(resolvedMsg{
					raw:        "https://www.youtube.com/watch?v=abc",
					resolution: &youtube.Resolution{ID: "abc", URL: "https://www.youtube.com/watch?v=abc"},
				})
				So(b.inputError, ShouldEqual, "This video is already added to the grid.")
				So(b.grid.Len(), ShouldEqual, 1)
			})
		})

		Convey("A resolution finishing after its entry was removed inserts it again", func() {
			msg := b.resolve("https://youtu.be/abc")()
			b.Update(msg)
			b.grid.Remove("abc")
			b.syncDeck()
			So(b.grid.Len(), ShouldEqual, 0)

			b.Update(msg)
			So(ids(b.grid), ShouldResemble, []string{"abc"})
			So(b.inputError, ShouldBeEmpty)
			So(b.deck.Len(), ShouldEqual, 1)
		})

		Convey("Resolution failures are shown inline", func() {
			b.Update(resolvedMsg{raw: "x", err: youtube.ErrInvalidURL})
			So(b.inputError, ShouldStartWith, "Invalid YouTube URL.")

			b.Update(resolvedMsg{raw: "x", err: errors.New("boom")})
			So(b.inputError, ShouldEqual, "boom")
		})

		Convey("Tab moves focus to a non-empty grid only", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyTab})
			So(b.state, ShouldEqual, inputState)

			b.grid.Insert(grid.Entry{ID: "a", URL: youtube.WatchURL("a")})
			b.Update(tea.KeyMsg{Type: tea.KeyTab})
			So(b.state, ShouldEqual, gridState)
		})
	})
}

func TestGridKeys(t *testing.T) {
	Convey("Given a focused grid of three", t, func() {
		b, done := newTestBubble("a", "b", "c")
		defer done()
		b.setState(gridState)
		b.syncDeck()

		Convey("Moving the cursor and activating selects the entry", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyDown})
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})
			So(b.grid.Active().OrEmpty(), ShouldEqual, "b")
			So(b.grid.Muted("a"), ShouldBeTrue)
			So(b.grid.Muted("b"), ShouldBeFalse)
		})

		Convey("m toggles the mute of the tile under the cursor", func() {
			b.cursor = 2
			b.Update(runes("m"))
			So(b.grid.Muted("c"), ShouldBeFalse)
			So(b.grid.Active().OrEmpty(), ShouldEqual, "a")
		})

		Convey("J and K move the tile", func() {
			b.Update(runes("J"))
			So(ids(b.grid), ShouldResemble, []string{"b", "a", "c"})
			So(b.cursor, ShouldEqual, 1)

			b.Update(runes("K"))
			So(ids(b.grid), ShouldResemble, []string{"a", "b", "c"})
			So(b.cursor, ShouldEqual, 0)
		})

		Convey("d removes the tile and its player", func() {
			b.Update(runes("d"))
			So(ids(b.grid), ShouldResemble, []string{"b", "c"})
			So(b.grid.Active().OrEmpty(), ShouldEqual, "b")
			So(b.deck.Len(), ShouldEqual, 2)
		})

		Convey("F hides the chrome and esc restores it", func() {
			b.Update(runes("F"))
			So(b.state, ShouldEqual, fullscreenState)
			So(b.header(), ShouldBeEmpty)

			b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(b.state, ShouldEqual, gridState)
		})

		Convey("f toggles the tile's player fullscreen", func() {
			b.Update(runes("f"))
			So(b.fullscreen["a"], ShouldBeTrue)
			p, ok := b.deck.Player("a")
			So(ok, ShouldBeTrue)
			So(p.(*player.Null).Fullscreen(), ShouldBeTrue)
		})

		Convey("q quits", func() {
			_, cmd := b.Update(runes("q"))
			So(cmd, ShouldNotBeNil)
		})
	})
}

func TestMouseDrag(t *testing.T) {
	Convey("Given a one-column grid of three", t, func() {
		b, done := newTestBubble("a", "b", "c")
		defer done()
		b.setState(gridState)

		rects := b.layout()
		So(rects, ShouldHaveLength, 3)
		So(rects[1].Top, ShouldEqual, rects[0].Bottom)

		press := func(r grid.Rect, dy int) tea.MouseMsg {
			return tea.MouseMsg{X: r.Left + 2, Y: r.Top + dy, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
		}
		motion := func(r grid.Rect, dy int) tea.MouseMsg {
			return tea.MouseMsg{X: r.Left + 2, Y: r.Top + dy, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
		}

		Convey("A click selects the tile", func() {
			b.Update(press(rects[2], 1))
			b.Update(tea.MouseMsg{X: rects[2].Left + 2, Y: rects[2].Top + 1, Action: tea.MouseActionRelease})
			So(b.grid.Active().OrEmpty(), ShouldEqual, "c")
			So(ids(b.grid), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("Dragging down past midpoints reorders live", func() {
			b.Update(press(rects[0], 1))

			b.Update(motion(rects[1], 1))
			So(ids(b.grid), ShouldResemble, []string{"a", "b", "c"})

			b.Update(motion(rects[1], 4))
			So(ids(b.grid), ShouldResemble, []string{"b", "a", "c"})

			b.Update(motion(rects[2], 5))
			So(ids(b.grid), ShouldResemble, []string{"b", "c", "a"})
			So(b.cursor, ShouldEqual, 2)

			b.Update(tea.MouseMsg{X: rects[2].Left, Y: rects[2].Top + 5, Action: tea.MouseActionRelease})
			So(b.drag.Dragging(), ShouldBeFalse)
		})

		Convey("The view renders every tile", func() {
			view := b.View()
			So(view, ShouldContainSubstring, "livegrid")
			So(view, ShouldContainSubstring, "3 streams")
		})
	})
}
