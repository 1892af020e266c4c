package store

import (
	"testing"

	"github.com/livegrid/livegrid/filesystem"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/where"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestStore(t *testing.T) {
	Convey("Given an empty filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("Load returns an empty list", func() {
			urls, err := Load()
			So(err, ShouldBeNil)
			So(urls, ShouldBeEmpty)
		})

		Convey("Save then Load returns the same list", func() {
			saved := []string{"https://youtu.be/a", "https://www.youtube.com/watch?v=b"}
			So(Save(saved), ShouldBeNil)

			urls, err := Load()
			So(err, ShouldBeNil)
			So(urls, ShouldResemble, saved)

			exists, _ := filesystem.API().Exists(where.Grid() + ".tmp")
			So(exists, ShouldBeFalse)
		})

		Convey("Saving nil writes an empty array", func() {
			So(Save(nil), ShouldBeNil)
			data, err := filesystem.API().ReadFile(where.Grid())
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "[]")
		})

		Convey("A corrupt file is an error", func() {
			So(filesystem.API().WriteFile(where.Grid(), []byte("{"), 0o644), ShouldBeNil)
			_, err := Load()
			So(err, ShouldNotBeNil)

			Convey("But Open still yields an empty grid", func() {
				So(Open().Len(), ShouldEqual, 0)
			})
		})
	})

	Convey("Entries drops urls without a video id", t, func() {
		entries := Entries([]string{"https://youtu.be/a", "not a url", "https://www.youtube.com/shorts/c"})
		So(entries, ShouldResemble, []grid.Entry{
			{ID: "a", URL: "https://youtu.be/a"},
			{ID: "c", URL: "https://www.youtube.com/shorts/c"},
		})
	})

	Convey("Open persists every change", t, func() {
		filesystem.SetMemMapFs()
		So(Save([]string{"https://youtu.be/a"}), ShouldBeNil)

		g := Open()
		So(g.Len(), ShouldEqual, 1)

		g.Insert(grid.Entry{ID: "b", URL: "https://youtu.be/b"})
		urls, err := Load()
		So(err, ShouldBeNil)
		So(urls, ShouldResemble, []string{"https://youtu.be/a", "https://youtu.be/b"})

		g.Reorder(1, 0)
		urls, _ = Load()
		So(urls, ShouldResemble, []string{"https://youtu.be/b", "https://youtu.be/a"})

		g.Remove("a")
		urls, _ = Load()
		So(urls, ShouldResemble, []string{"https://youtu.be/b"})
	})
}
