package grid

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func entry(id string) Entry {
	return Entry{ID: id, URL: "https://www.youtube.com/watch?v=" + id}
}

func ids(g *Grid) []string {
	var out []string
	for _, e := range g.Entries() {
		out = append(out, e.ID)
	}
	return out
}

func TestGrid(t *testing.T) {
	Convey("Given an empty grid", t, func() {
		g := New()
		var changes [][]string
		g.OnChange(func(urls []string) { changes = append(changes, urls) })

		So(g.Active().IsAbsent(), ShouldBeTrue)

		Convey("The first insert becomes active and audible", func() {
			So(g.Insert(entry("a")), ShouldBeTrue)
			So(g.Active().OrEmpty(), ShouldEqual, "a")
			So(g.Muted("a"), ShouldBeFalse)
			So(changes, ShouldHaveLength, 1)
		})

		Convey("Later inserts are muted and keep the active entry", func() {
			g.Insert(entry("a"))
			g.Insert(entry("b"))
			So(g.Active().OrEmpty(), ShouldEqual, "a")
			So(g.Muted("b"), ShouldBeTrue)
			So(g.URLs(), ShouldResemble, []string{
				"https://www.youtube.com/watch?v=a",
				"https://www.youtube.com/watch?v=b",
			})
		})

		Convey("Duplicate inserts are rejected without change", func() {
			g.Insert(entry("a"))
			g.Insert(entry("b"))
			So(g.Insert(Entry{ID: "a", URL: "https://youtu.be/a"}), ShouldBeFalse)
			So(ids(g), ShouldResemble, []string{"a", "b"})
			So(g.URLs()[0], ShouldEqual, "https://www.youtube.com/watch?v=a")
			So(changes, ShouldHaveLength, 2)
		})
	})

	Convey("Given a grid of three", t, func() {
		g := New()
		for _, id := range []string{"a", "b", "c"} {
			g.Insert(entry(id))
		}
		var changes int
		g.OnChange(func([]string) { changes++ })

		Convey("Removing the active entry falls back to the first", func() {
			g.Remove("a")
			So(g.Active().OrEmpty(), ShouldEqual, "b")
			So(g.Muted("b"), ShouldBeFalse)
			So(changes, ShouldEqual, 1)

			Convey("And to none when emptied", func() {
				g.Remove("b")
				g.Remove("c")
				So(g.Active().IsAbsent(), ShouldBeTrue)
				So(g.Len(), ShouldEqual, 0)
			})
		})

		Convey("Removing another entry keeps the selection", func() {
			g.Remove("c")
			So(g.Active().OrEmpty(), ShouldEqual, "a")
			So(ids(g), ShouldResemble, []string{"a", "b"})
		})

		Convey("Removing an unknown id does nothing", func() {
			g.Remove("zzz")
			So(g.Len(), ShouldEqual, 3)
			So(changes, ShouldEqual, 0)
		})

		Convey("Reorder splices the entry into place", func() {
			g.Reorder(0, 2)
			So(ids(g), ShouldResemble, []string{"b", "c", "a"})
			So(changes, ShouldEqual, 1)

			Convey("And the inverse move restores the order", func() {
				g.Reorder(2, 0)
				So(ids(g), ShouldResemble, []string{"a", "b", "c"})
			})
		})

		Convey("Reorder to the same index or out of range is a no-op", func() {
			g.Reorder(1, 1)
			g.Reorder(-1, 2)
			g.Reorder(0, 3)
			So(ids(g), ShouldResemble, []string{"a", "b", "c"})
			So(changes, ShouldEqual, 0)
		})

		Convey("Reorder does not change identity or selection", func() {
			g.Select("b")
			g.Reorder(1, 0)
			So(g.Active().OrEmpty(), ShouldEqual, "b")
			So(g.IndexOf("b"), ShouldEqual, 0)
		})

		Convey("Selecting mutes only the previously active entry", func() {
			g.ToggleMute("c")
			So(g.Muted("c"), ShouldBeFalse)

			g.Select("b")
			So(g.Active().OrEmpty(), ShouldEqual, "b")
			So(g.Muted("a"), ShouldBeTrue)
			So(g.Muted("b"), ShouldBeFalse)
			So(g.Muted("c"), ShouldBeFalse)
		})

		Convey("Selecting an unknown id is ignored", func() {
			g.Select("nope")
			So(g.Active().OrEmpty(), ShouldEqual, "a")
		})

		Convey("Toggling mute leaves the selection alone", func() {
			g.ToggleMute("a")
			So(g.Muted("a"), ShouldBeTrue)
			So(g.Active().OrEmpty(), ShouldEqual, "a")
			So(changes, ShouldEqual, 0)
		})

		Convey("SetMuted records external changes", func() {
			g.SetMuted("b", false)
			So(g.Muted("b"), ShouldBeFalse)
			So(g.Muted("unknown"), ShouldBeTrue)
		})
	})

	Convey("Load hydrates without notifying", t, func() {
		g := New()
		var changes int
		g.OnChange(func([]string) { changes++ })

		g.Load([]Entry{entry("x"), entry("y"), entry("x")})
		So(ids(g), ShouldResemble, []string{"x", "y"})
		So(g.Active().OrEmpty(), ShouldEqual, "x")
		So(g.Muted("x"), ShouldBeFalse)
		So(g.Muted("y"), ShouldBeTrue)
		So(changes, ShouldEqual, 0)
		So(g.Contains("y"), ShouldBeTrue)
	})
}

func TestReorderRoundTrip(t *testing.T) {
	Convey("Given a grid of five entries", t, func() {
		g := New()
		for _, id := range []string{"a", "b", "c", "d", "e"} {
			g.Insert(entry(id))
		}
		want := ids(g)

		Convey("Reorder(i, j) followed by Reorder(j, i) restores the order for every pair", func() {
			for i := 0; i < g.Len(); i++ {
				for j := 0; j < g.Len(); j++ {
					g.Reorder(i, j)
					g.Reorder(j, i)
					So(ids(g), ShouldResemble, want)
				}
			}
		})
	})
}
