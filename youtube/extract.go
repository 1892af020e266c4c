package youtube

import (
	"regexp"
	"strings"

	"github.com/livegrid/livegrid/util"
)

var (
	videoPattern   = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)(?P<id>[^&\n?#]+)`)
	channelPattern = regexp.MustCompile(`youtube\.com/(?:channel/(?P<channel>[a-zA-Z0-9_-]+)|c/(?P<custom>[a-zA-Z0-9_-]+)|@(?P<handle>[a-zA-Z0-9_-]+))`)
)

// ExtractVideoID pulls the video id out of a watch, youtu.be, embed or shorts URL.
// The id runs up to the next '&', '?', '#' or newline.
func ExtractVideoID(raw string) (string, bool) {
	id := util.ReGroups(videoPattern, raw)["id"]
	return id, id != ""
}

// ExtractChannelIdentifier returns the channel id, custom name or handle from a channel URL.
func ExtractChannelIdentifier(raw string) (string, bool) {
	groups := util.ReGroups(channelPattern, raw)
	for _, name := range []string{"channel", "custom", "handle"} {
		if v := groups[name]; v != "" {
			return v, true
		}
	}
	return "", false
}

// IsChannelID reports whether the identifier already is a channel id rather than a handle.
func IsChannelID(identifier string) bool {
	return strings.HasPrefix(identifier, "UC")
}

// WatchURL is the canonical playable URL for a video id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
