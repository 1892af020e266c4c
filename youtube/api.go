package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/livegrid/livegrid/config"
	"github.com/livegrid/livegrid/filesystem"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/log"
	"github.com/livegrid/livegrid/network"
	"github.com/livegrid/livegrid/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// UnknownChannel is the caption used when a channel title can't be fetched.
const UnknownChannel = "Unknown"

// API is the subset of the YouTube Data API the resolver depends on.
type API interface {
	// IsLive reports whether the video is currently broadcasting.
	// A missing video is not live and not an error.
	IsLive(ctx context.Context, videoID string) (bool, error)

	// ChannelIDForHandle maps a handle or custom name to a channel id.
	ChannelIDForHandle(ctx context.Context, handle string) (mo.Option[string], error)

	// LiveVideoForChannel finds the channel's current live broadcast.
	LiveVideoForChannel(ctx context.Context, channelID string) (mo.Option[string], error)

	// ChannelTitle never fails; it falls back to UnknownChannel.
	ChannelTitle(ctx context.Context, videoID string) string
}

// DataAPI implements API on top of the YouTube Data API v3.
type DataAPI struct {
	service *youtube.Service
	titles  *lru.Cache[string, string]

	// handlesMu guards the read-modify-write of the handle cache file.
	handlesMu sync.Mutex
	handles   *gache.Cache[map[string]string]
}

// NewDataAPI creates a client authenticated with apiKey. Extra options are
// appended after the defaults, so tests can redirect the endpoint.
func NewDataAPI(ctx context.Context, apiKey string, opts ...option.ClientOption) (*DataAPI, error) {
	base := network.Client()
	client := &http.Client{
		Timeout:   config.Seconds(key.YouTubeTimeout),
		Transport: &keyTransport{key: apiKey, next: base.Transport},
	}

	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}

	titles, err := lru.New[string, string](256)
	if err != nil {
		return nil, err
	}

	return &DataAPI{
		service: service,
		handles: gache.New[map[string]string](&gache.Options{
			Path:       where.Channels(),
			FileSystem: &filesystem.GacheFs{},
		}),
		titles: titles,
	}, nil
}

func (d *DataAPI) IsLive(ctx context.Context, videoID string) (bool, error) {
	resp, err := d.service.Videos.
		List([]string{"snippet", "liveStreamingDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return false, fmt.Errorf("videos.list %s: %w", videoID, err)
	}

	if len(resp.Items) == 0 {
		return false, nil
	}

	video := resp.Items[0]
	if video.Snippet != nil {
		d.titles.Add(videoID, video.Snippet.ChannelTitle)
		if video.Snippet.LiveBroadcastContent == "live" {
			return true, nil
		}
	}

	return video.LiveStreamingDetails != nil && video.LiveStreamingDetails.ActualStartTime != "", nil
}

func (d *DataAPI) ChannelIDForHandle(ctx context.Context, handle string) (mo.Option[string], error) {
	handle = strings.TrimPrefix(handle, "@")

	cacheable := viper.GetBool(key.YouTubeCacheHandles)
	if cacheable {
		if id, ok := d.cachedHandle(handle); ok {
			return mo.Some(id), nil
		}
	}

	resp, err := d.service.Channels.
		List([]string{"id"}).
		ForHandle(handle).
		Context(ctx).
		Do()
	if err != nil {
		return mo.None[string](), fmt.Errorf("channels.list %s: %w", handle, err)
	}

	if len(resp.Items) == 0 {
		return mo.None[string](), nil
	}

	id := resp.Items[0].Id
	if cacheable {
		d.rememberHandle(handle, id)
	}
	return mo.Some(id), nil
}

func (d *DataAPI) cachedHandle(handle string) (string, bool) {
	d.handlesMu.Lock()
	defer d.handlesMu.Unlock()

	cached, _, err := d.handles.Get()
	if err != nil || cached == nil {
		return "", false
	}
	id, ok := cached[strings.ToLower(handle)]
	return id, ok
}

func (d *DataAPI) rememberHandle(handle, id string) {
	d.handlesMu.Lock()
	defer d.handlesMu.Unlock()

	cached, _, err := d.handles.Get()
	if err != nil || cached == nil {
		cached = make(map[string]string)
	}
	cached[strings.ToLower(handle)] = id
	if err := d.handles.Set(cached); err != nil {
		log.Warnf("caching channel handle %s: %v", handle, err)
	}
}

func (d *DataAPI) LiveVideoForChannel(ctx context.Context, channelID string) (mo.Option[string], error) {
	resp, err := d.service.Search.
		List([]string{"snippet"}).
		ChannelId(channelID).
		EventType("live").
		Type("video").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return mo.None[string](), fmt.Errorf("search.list %s: %w", channelID, err)
	}

	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			if item.Snippet != nil {
				d.titles.Add(item.Id.VideoId, item.Snippet.ChannelTitle)
			}
			return mo.Some(item.Id.VideoId), nil
		}
	}

	return mo.None[string](), nil
}

func (d *DataAPI) ChannelTitle(ctx context.Context, videoID string) string {
	if title, ok := d.titles.Get(videoID); ok && title != "" {
		return title
	}

	resp, err := d.service.Videos.
		List([]string{"snippet"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		log.Warnf("channel title for %s: %v", videoID, err)
		return UnknownChannel
	}

	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil || resp.Items[0].Snippet.ChannelTitle == "" {
		return UnknownChannel
	}

	title := resp.Items[0].Snippet.ChannelTitle
	d.titles.Add(videoID, title)
	return title
}

// keyTransport appends the API key to every request. option.WithAPIKey is
// ignored once a custom HTTP client is supplied, so the key travels here instead.
type keyTransport struct {
	key  string
	next http.RoundTripper
}

func (t *keyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	q := req.URL.Query()
	q.Set("key", t.key)
	req.URL.RawQuery = q.Encode()
	return t.next.RoundTrip(req)
}
