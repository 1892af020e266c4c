package auth

import (
	"testing"

	"github.com/livegrid/livegrid/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestAPIKey(t *testing.T) {
	Convey("Given a mocked keyring", t, func() {
		viper.Set(key.YouTubeAPIKey, "")
		_ = DeleteAPIKey()

		Convey("No credential should resolve to empty", func() {
			So(APIKey(), ShouldBeEmpty)
		})

		Convey("A stored key should be returned", func() {
			So(SetAPIKey("  stored-key "), ShouldBeNil)
			So(APIKey(), ShouldEqual, "stored-key")

			Convey("And config should take precedence", func() {
				viper.Set(key.YouTubeAPIKey, "config-key")
				So(APIKey(), ShouldEqual, "config-key")
			})

			Convey("And deleting it should clear the credential", func() {
				So(DeleteAPIKey(), ShouldBeNil)
				So(APIKey(), ShouldBeEmpty)
			})
		})

		Convey("Empty keys should be rejected", func() {
			So(SetAPIKey("   "), ShouldNotBeNil)
		})

		Convey("Deleting a missing key is fine", func() {
			So(DeleteAPIKey(), ShouldBeNil)
		})
	})
}
