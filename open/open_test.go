package open

import (
	"path/filepath"
	"testing"

	"github.com/livegrid/livegrid/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	const url = "https://www.youtube.com/watch?v=jfKfPfyJRdk"

	Convey("Given a supported platform", t, func() {
		Convey("Linux uses xdg-open", func() {
			cmd, ok := command(constant.Linux, url)
			So(ok, ShouldBeTrue)
			So(filepath.Base(cmd.Path), ShouldEqual, "xdg-open")
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, url)
		})

		Convey("macOS uses open", func() {
			cmd, ok := command(constant.Darwin, url)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", url})
		})
	})

	Convey("Given an unsupported platform", t, func() {
		_, ok := command("plan9", url)
		So(ok, ShouldBeFalse)
	})
}
