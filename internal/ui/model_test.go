package ui

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}
		So(m.View("body"), ShouldEqual, "body")

		Convey("A notification is shown and scheduled for clearing", func() {
			So(m.Update(Notify("Added")()), ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "Added")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")

			Convey("A stale clear message is ignored", func() {
				m.Update(ClearNotificationMsg{at: time.Now().Add(-time.Hour)})
				So(m.Current(), ShouldEqual, "Added")
			})

			Convey("The matching clear message hides it", func() {
				m.Update(ClearNotificationMsg{at: m.notifiedAt})
				So(m.Current(), ShouldBeEmpty)
			})
		})

		Convey("Other messages are ignored", func() {
			So(m.Update("plain string"), ShouldBeNil)
			So(m.Current(), ShouldBeEmpty)
		})
	})
}
