// Package network provides the shared HTTP client used for YouTube Data API traffic.
package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/livegrid/livegrid/constant"
	"github.com/livegrid/livegrid/key"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

var (
	once   sync.Once
	client *http.Client
)

// Client returns the process-wide HTTP client. Its transport is throttled to
// youtube.requests_per_second so bursts of pasted URLs don't exhaust API quota.
func Client() *http.Client {
	once.Do(func() {
		rps := viper.GetFloat64(key.YouTubeRequestsPerSecond)
		client = New(rps, time.Minute)
	})
	return client
}

// New builds a client whose requests wait on a token bucket of rps tokens per second.
// A non-positive rps disables throttling.
func New(rps float64, timeout time.Duration) *http.Client {
	var rt http.RoundTripper = newTransport()
	if rps > 0 {
		rt = &limitedTransport{
			next:    rt,
			limiter: rate.NewLimiter(rate.Limit(rps), max(int(rps), 1)),
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{next: rt},
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

type limitedTransport struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}

type userAgentTransport struct {
	next http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return t.next.RoundTrip(req)
}
