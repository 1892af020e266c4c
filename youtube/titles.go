package youtube

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Titles fetches channel titles for many videos concurrently.
// Without an API every id maps to UnknownChannel.
func Titles(ctx context.Context, api API, ids []string) map[string]string {
	titles := make(map[string]string, len(ids))
	if api == nil {
		for _, id := range ids {
			titles[id] = UnknownChannel
		}
		return titles
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, id := range ids {
		id := id
		g.Go(func() error {
			title := api.ChannelTitle(ctx, id)
			mu.Lock()
			titles[id] = title
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return titles
}
