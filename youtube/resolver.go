// Package youtube turns pasted strings into playable live video ids.
package youtube

import (
	"context"
	"strings"

	"github.com/livegrid/livegrid/log"
)

// Resolution is a successfully resolved input.
type Resolution struct {
	ID  string `json:"id"`
	URL string `json:"url"`

	// ViaChannel is set when the id was found through a channel's /live page.
	ViaChannel bool `json:"via_channel"`
}

// Resolver validates raw input. A nil API means no credential is configured:
// channel links are then rejected and every extracted video is assumed live.
type Resolver struct {
	api API
}

func NewResolver(api API) *Resolver {
	return &Resolver{api: api}
}

// HasCredential reports whether API calls will be made.
func (r *Resolver) HasCredential() bool {
	return r.api != nil
}

// Resolve maps raw input to a live video. Duplicate detection is left to the caller
// since only the grid knows its current contents.
func (r *Resolver) Resolve(ctx context.Context, raw string) (*Resolution, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil, reject(Empty, raw)
	}

	id, ok := ExtractVideoID(input)
	if !ok {
		if !strings.Contains(input, "/live") || r.api == nil {
			return nil, reject(InvalidURL, input)
		}
		return r.resolveChannel(ctx, input)
	}

	if !r.isLive(ctx, id) {
		return nil, reject(NotLive, input)
	}

	return &Resolution{ID: id, URL: input}, nil
}

func (r *Resolver) resolveChannel(ctx context.Context, input string) (*Resolution, error) {
	identifier, ok := ExtractChannelIdentifier(input)
	if !ok {
		return nil, reject(InvalidURL, input)
	}

	channelID := identifier
	if !IsChannelID(identifier) {
		found, err := r.api.ChannelIDForHandle(ctx, identifier)
		if err != nil {
			log.Warnf("resolving handle %s: %v", identifier, err)
		}
		if found.IsAbsent() {
			return nil, reject(InvalidURL, input)
		}
		channelID = found.MustGet()
	}

	video, err := r.api.LiveVideoForChannel(ctx, channelID)
	if err != nil {
		log.Warnf("searching live video of %s: %v", channelID, err)
	}

	id, ok := video.Get()
	if !ok {
		return nil, reject(NoLiveVideo, input)
	}

	// a search hit with eventType=live is trusted without a second round trip
	return &Resolution{ID: id, URL: WatchURL(id), ViaChannel: true}, nil
}

func (r *Resolver) isLive(ctx context.Context, id string) bool {
	if r.api == nil {
		return true
	}

	live, err := r.api.IsLive(ctx, id)
	if err != nil {
		log.Warnf("liveness of %s: %v", id, err)
		return false
	}
	return live
}
