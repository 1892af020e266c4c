package player

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/livegrid/livegrid/grid"
	. "github.com/smartystreets/goconvey/convey"
)

type fakePlayer struct {
	mu       sync.Mutex
	url      string
	calls    []string
	startErr error
	ready    chan struct{}
	exited   chan struct{}
	once     sync.Once
	observer func(bool)
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{ready: make(chan struct{}), exited: make(chan struct{})}
}

func (f *fakePlayer) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakePlayer) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakePlayer) Start(url, _ string) error {
	f.url = url
	return f.startErr
}

func (f *fakePlayer) Ready() <-chan struct{}      { return f.ready }
func (f *fakePlayer) Wait() <-chan struct{}       { return f.exited }
func (f *fakePlayer) Mute() error                 { return f.record("mute") }
func (f *fakePlayer) Unmute() error               { return f.record("unmute") }
func (f *fakePlayer) SetFullscreen(on bool) error { return f.record("fullscreen") }
func (f *fakePlayer) ObserveMute(fn func(bool))   { f.observer = fn }

func (f *fakePlayer) Close() error {
	f.once.Do(func() {
		_ = f.record("close")
		close(f.exited)
	})
	return nil
}

type fakeFactory struct {
	mu       sync.Mutex
	built    []*fakePlayer
	failNext bool
}

func (ff *fakeFactory) New() Player {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	p := newFakePlayer()
	if ff.failNext {
		p.startErr = errors.New("mpv not found")
		ff.failNext = false
	}
	ff.built = append(ff.built, p)
	return p
}

func (ff *fakeFactory) Built() []*fakePlayer {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	return append([]*fakePlayer(nil), ff.built...)
}

func entries(ids ...string) []grid.Entry {
	out := make([]grid.Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, grid.Entry{ID: id, URL: "https://youtu.be/" + id})
	}
	return out
}

func TestDeck(t *testing.T) {
	Convey("Given a deck backed by fake players", t, func() {
		factory := &fakeFactory{}
		deck := NewDeck(factory.New, nil)
		muted := map[string]bool{"a": false, "b": true}
		isMuted := func(id string) bool { return muted[id] }

		deck.Sync(entries("a", "b"), isMuted)
		built := factory.Built()
		So(built, ShouldHaveLength, 2)
		So(deck.Len(), ShouldEqual, 2)
		So(built[0].url, ShouldEqual, "https://youtu.be/a")

		Convey("Mute state waits for readiness", func() {
			So(built[0].Calls(), ShouldBeEmpty)

			close(built[0].ready)
			So(eventually(func() bool { return len(built[0].Calls()) == 1 }), ShouldBeTrue)
			So(built[0].Calls(), ShouldResemble, []string{"unmute"})
		})

		Convey("Reordering never rebuilds players", func() {
			deck.Sync(entries("b", "a"), isMuted)
			So(factory.Built(), ShouldHaveLength, 2)
		})

		Convey("Only changed mute state is sent again", func() {
			close(built[1].ready)
			So(eventually(func() bool { return len(built[1].Calls()) == 1 }), ShouldBeTrue)

			deck.Sync(entries("a", "b"), isMuted)
			So(built[1].Calls(), ShouldResemble, []string{"mute"})

			muted["b"] = false
			deck.Sync(entries("a", "b"), isMuted)
			So(built[1].Calls(), ShouldResemble, []string{"mute", "unmute"})
		})

		Convey("Removed entries close their player", func() {
			deck.Sync(entries("a"), isMuted)
			So(eventually(func() bool {
				calls := built[1].Calls()
				return len(calls) > 0 && calls[len(calls)-1] == "close"
			}), ShouldBeTrue)
			So(deck.Len(), ShouldEqual, 1)
		})

		Convey("A failed start is logged and skipped", func() {
			factory.failNext = true
			deck.Sync(entries("a", "b", "c"), isMuted)
			So(deck.Len(), ShouldEqual, 2)
			_, ok := deck.Player("c")
			So(ok, ShouldBeFalse)

			Convey("and is not retried while the entry stays", func() {
				deck.Sync(entries("a", "b", "c"), isMuted)
				So(factory.Built(), ShouldHaveLength, 3)
			})

			Convey("and is retried once the entry was removed and added again", func() {
				deck.Sync(entries("a", "b"), isMuted)
				deck.Sync(entries("a", "b", "c"), isMuted)
				So(factory.Built(), ShouldHaveLength, 4)
				_, ok := deck.Player("c")
				So(ok, ShouldBeTrue)
			})
		})

		Convey("Mute changes from the window are reported", func() {
			var got []string
			var mu sync.Mutex
			deck.OnMuteChange(func(id string, m bool) {
				mu.Lock()
				defer mu.Unlock()
				if m {
					got = append(got, id+":muted")
				}
			})

			built[0].observer(true)
			mu.Lock()
			So(got, ShouldResemble, []string{"a:muted"})
			mu.Unlock()
		})

		Convey("A player exiting on its own is forgotten", func() {
			exited := make(chan string, 1)
			deck.OnExit(func(id string) { exited <- id })

			built[0].Close()
			select {
			case id := <-exited:
				So(id, ShouldEqual, "a")
			case <-time.After(time.Second):
				So("timeout", ShouldBeEmpty)
			}
			So(deck.Len(), ShouldEqual, 1)

			Convey("and is not rebuilt by the next sync", func() {
				deck.Sync(entries("a", "b"), isMuted)
				So(factory.Built(), ShouldHaveLength, 2)
				_, ok := deck.Player("a")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("Fullscreen goes to the tile's player", func() {
			So(deck.SetFullscreen("b", true), ShouldBeNil)
			So(built[1].Calls(), ShouldResemble, []string{"fullscreen"})
			So(deck.SetFullscreen("zzz", true), ShouldBeNil)
		})

		Convey("Close shuts everything down", func() {
			deck.Close()
			So(deck.Len(), ShouldEqual, 0)
			So(built[0].Calls(), ShouldContain, "close")
			So(built[1].Calls(), ShouldContain, "close")
		})

		Reset(func() {
			deck.Close()
		})
	})
}

func eventually(cond func() bool) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
