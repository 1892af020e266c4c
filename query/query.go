// Package query remembers pasted URLs and suggests them back while typing.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/livegrid/livegrid/filesystem"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type urlRecord struct {
	Rank int    `json:"rank"`
	URL  string `json:"url"`
}

var cacher = gache.New[map[string]*urlRecord](
	&gache.Options{
		Path:       where.URLs(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*urlRecord)

// Remember records a URL that was successfully added, or bumps its rank.
func Remember(url string, weight int) error {
	url = sanitize(url)
	if url == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*urlRecord)
	}

	if record, ok := cached[url]; ok {
		record.Rank += weight
	} else {
		cached[url] = &urlRecord{Rank: weight, URL: url}
	}

	clear(suggestionCache)
	return cacher.Set(cached)
}

// Forget drops a URL from the history, e.g. after its stream ended.
func Forget(url string) error {
	cached, _, err := cacher.Get()
	if err != nil || cached == nil {
		return err
	}

	delete(cached, sanitize(url))
	clear(suggestionCache)
	return cacher.Set(cached)
}

// Suggest returns the best ranked URL fuzzily matching the partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns every remembered URL matching the input, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.InputShowURLSuggestions) {
		return []string{}
	}

	q = sanitize(q)
	var records []*urlRecord

	if prev, ok := suggestionCache[q]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.MatchFold(q, record.URL) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *urlRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.URL, b.URL)
		})

		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *urlRecord, _ int) string {
		return r.URL
	})
}

// video ids are case sensitive, so only whitespace is normalized
func sanitize(url string) string {
	return strings.TrimSpace(url)
}
