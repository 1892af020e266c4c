package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/livegrid/livegrid/config"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/youtube"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func TestParsePosition(t *testing.T) {
	Convey("Given a grid with three entries", t, func() {
		Convey("Positions are 1-based", func() {
			i, err := parsePosition("1", 3)
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 0)

			i, err = parsePosition("3", 3)
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 2)
		})

		Convey("Out of range positions are rejected", func() {
			_, err := parsePosition("0", 3)
			So(err, ShouldNotBeNil)

			_, err = parsePosition("4", 3)
			So(err, ShouldNotBeNil)
		})

		Convey("Non-numeric positions are rejected", func() {
			_, err := parsePosition("first", 3)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestMatchEntries(t *testing.T) {
	entries := []grid.Entry{
		{ID: "jfKfPfyJRdk", URL: "https://www.youtube.com/watch?v=jfKfPfyJRdk"},
		{ID: "4xDzrJKXOOY", URL: "https://youtu.be/4xDzrJKXOOY"},
		{ID: "jfKfPfyJRdq", URL: "https://www.youtube.com/watch?v=jfKfPfyJRdq"},
	}

	Convey("Given the entries of a grid", t, func() {
		Convey("An exact id wins over fuzzy matches", func() {
			matches := matchEntries(entries, "jfKfPfyJRdk")
			So(matches, ShouldHaveLength, 1)
			So(matches[0].ID, ShouldEqual, "jfKfPfyJRdk")
		})

		Convey("An exact URL matches its entry", func() {
			matches := matchEntries(entries, "https://youtu.be/4xDzrJKXOOY")
			So(matches, ShouldHaveLength, 1)
			So(matches[0].ID, ShouldEqual, "4xDzrJKXOOY")
		})

		Convey("A partial query matches every fitting entry", func() {
			matches := matchEntries(entries, "jfkf")
			So(matches, ShouldHaveLength, 2)
		})

		Convey("A query matching nothing yields nothing", func() {
			So(matchEntries(entries, "zzzz"), ShouldBeEmpty)
		})
	})
}

func TestNewResolver(t *testing.T) {
	keyring.MockInit()

	Convey("Given the YouTube client constructor", t, func() {
		original := newDataAPI
		Reset(func() {
			newDataAPI = original
			viper.Set(key.YouTubeAPIKey, "")
		})

		Convey("Without a key the resolver runs without an API", func() {
			viper.Set(key.YouTubeAPIKey, "")
			resolver, api, err := newResolver(context.Background())
			So(err, ShouldBeNil)
			So(api, ShouldBeNil)
			So(resolver.HasCredential(), ShouldBeFalse)
		})

		Convey("A configured key whose client fails is reported instead of dropped", func() {
			viper.Set(key.YouTubeAPIKey, "test-key")
			newDataAPI = func(context.Context, string) (youtube.API, error) {
				return nil, errors.New("no transport")
			}

			resolver, api, err := newResolver(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no transport")
			So(resolver, ShouldBeNil)
			So(api, ShouldBeNil)
		})

		Convey("A configured key yields a resolver with a credential", func() {
			viper.Set(key.YouTubeAPIKey, "test-key")
			var called string
			newDataAPI = func(_ context.Context, apiKey string) (youtube.API, error) {
				called = apiKey
				return stubAPI{}, nil
			}

			resolver, api, err := newResolver(context.Background())
			So(err, ShouldBeNil)
			So(api, ShouldNotBeNil)
			So(called, ShouldEqual, "test-key")
			So(resolver.HasCredential(), ShouldBeTrue)
		})
	})
}

// stubAPI satisfies youtube.API; the resolver is never asked to resolve here.
type stubAPI struct{ youtube.API }

func TestConfigValues(t *testing.T) {
	Convey("Given registered config fields", t, func() {
		Convey("Values are parsed to the type of the default", func() {
			v, err := parseValue(config.Default[key.GridColumns], []string{"3"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 3)

			v, err = parseValue(config.Default[key.LogsWrite], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			v, err = parseValue(config.Default[key.PlayerMPVFlags], []string{"--volume=50", "--ontop"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"--volume=50", "--ontop"})

			v, err = parseValue(config.Default[key.InputPromptString], []string{">>"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, ">>")
		})

		Convey("Malformed values are rejected", func() {
			_, err := parseValue(config.Default[key.GridColumns], []string{"three"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.LogsWrite], []string{"maybe"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.LogsWrite], nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown keys suggest the closest one", func() {
			_, err := lookupField("grid.colums")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.GridColumns)
		})

		Convey("The API key is never echoed", func() {
			So(display(key.YouTubeAPIKey, "secret"), ShouldEqual, "(hidden)")
			So(display(key.YouTubeAPIKey, ""), ShouldEqual, "")
			So(display(key.GridColumns, 2), ShouldEqual, "2")
		})
	})
}
