package player

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMPVArgs(t *testing.T) {
	Convey("Given an mpv player with extra flags", t, func() {
		m := NewMPV()
		m.socketPath = "/tmp/livegrid/mpv-test.sock"
		m.flags = []string{"--ytdl-format=best[height<=720]", "  "}

		args := m.args("https://youtu.be/abc", "Lofi Girl")

		Convey("It starts muted with an IPC socket", func() {
			So(args, ShouldContain, "--mute=yes")
			So(args, ShouldContain, "--input-ipc-server=/tmp/livegrid/mpv-test.sock")
			So(args, ShouldContain, "--force-media-title=Lofi Girl")
		})

		Convey("User flags come before the target", func() {
			So(args, ShouldContain, "--ytdl-format=best[height<=720]")
			So(args, ShouldNotContain, "  ")
			So(args[len(args)-2], ShouldEqual, "--")
			So(args[len(args)-1], ShouldEqual, "https://youtu.be/abc")
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("Media targets must be http URLs", t, func() {
		_, err := sanitizeMediaTarget("https://www.youtube.com/watch?v=abc")
		So(err, ShouldBeNil)

		for _, bad := range []string{"", "--script=evil.lua", "file:///etc/passwd", "https://x\n--y", "/local/file.mp4"} {
			_, err := sanitizeMediaTarget(bad)
			So(err, ShouldNotBeNil)
		}
	})

	Convey("Titles are flattened to one line", t, func() {
		So(sanitizeTitle(" Lofi\nGirl\t24/7\x00 "), ShouldEqual, "Lofi Girl 24/7")
	})
}

func TestNewFactory(t *testing.T) {
	Convey("Backends are chosen by name", t, func() {
		f, err := NewFactory("MPV")
		So(err, ShouldBeNil)
		So(f(), ShouldHaveSameTypeAs, &MPV{})

		f, err = NewFactory("none")
		So(err, ShouldBeNil)
		So(f(), ShouldHaveSameTypeAs, &Null{})

		_, err = NewFactory("vlc")
		So(err, ShouldNotBeNil)
	})
}

func TestNull(t *testing.T) {
	Convey("Null is ready after start and tracks state", t, func() {
		n := NewNull()
		So(n.Muted(), ShouldBeTrue)
		So(n.Start("https://youtu.be/a", "a"), ShouldBeNil)
		<-n.Ready()

		So(n.Unmute(), ShouldBeNil)
		So(n.Muted(), ShouldBeFalse)
		So(n.SetFullscreen(true), ShouldBeNil)
		So(n.Fullscreen(), ShouldBeTrue)
		So(n.URL(), ShouldEqual, "https://youtu.be/a")

		So(n.Close(), ShouldBeNil)
		So(n.Close(), ShouldBeNil)
		<-n.Wait()
	})
}

// fakeMPV answers every command on a unix socket, interleaving an unrelated event first.
func fakeMPV(t *testing.T) (string, func()) {
	dir, err := os.MkdirTemp("", "lg")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "mpv.sock")

	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal(err)
	}

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				scanner := bufio.NewScanner(conn)
				for scanner.Scan() {
					var cmd ipcCommand
					if json.Unmarshal(scanner.Bytes(), &cmd) != nil {
						return
					}
					_, _ = conn.Write([]byte(`{"event":"playback-restart"}` + "\n"))

					switch cmd.Command[0] {
					case "get_property":
						_, _ = conn.Write([]byte(`{"data":true,"error":"success"}` + "\n"))
					case "observe_property":
						_, _ = conn.Write([]byte(`{"error":"success"}` + "\n"))
						_, _ = conn.Write([]byte(`{"event":"property-change","id":1,"name":"mute","data":false}` + "\n"))
					default:
						_, _ = conn.Write([]byte(`{"error":"property not found"}` + "\n"))
					}
				}
			}(conn)
		}
	}()

	return path, func() {
		ln.Close()
		os.RemoveAll(dir)
	}
}

func TestIPC(t *testing.T) {
	Convey("Given a fake mpv socket", t, func() {
		path, stop := fakeMPV(t)
		defer stop()

		Convey("Replies are read past interleaved events", func() {
			data, err := doSendCommand(path, []any{"get_property", "mute"})
			So(err, ShouldBeNil)
			So(data, ShouldEqual, true)
		})

		Convey("mpv errors are surfaced", func() {
			_, err := doSendCommand(path, []any{"set_property", "nope", 1})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "property not found")
		})

		Convey("The event listener forwards property changes", func() {
			got := make(chan any, 4)
			el := NewEventListener(path, []string{"mute"}, func(property string, data any) {
				if property == "mute" {
					got <- data
				}
			})
			So(el.Start(), ShouldBeNil)
			defer el.Stop()

			So(<-got, ShouldEqual, false)
		})
	})
}
