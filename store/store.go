// Package store persists the grid as a JSON array of URL strings.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/livegrid/livegrid/filesystem"
	"github.com/livegrid/livegrid/grid"
	"github.com/livegrid/livegrid/log"
	"github.com/livegrid/livegrid/where"
	"github.com/livegrid/livegrid/youtube"
)

// Load reads the saved URLs. A missing file is an empty grid.
func Load() ([]string, error) {
	data, err := filesystem.API().ReadFile(where.Grid())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read grid: %w", err)
	}

	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, fmt.Errorf("decode grid: %w", err)
	}
	if urls == nil {
		urls = []string{}
	}
	return urls, nil
}

// Save overwrites the saved URLs.
func Save(urls []string) error {
	if urls == nil {
		urls = []string{}
	}

	data, err := json.MarshalIndent(urls, "", "  ")
	if err != nil {
		return err
	}

	return filesystem.WriteAtomic(where.Grid(), data)
}

// Entries converts saved URLs back into grid entries.
// URLs without an extractable video id are dropped.
func Entries(urls []string) []grid.Entry {
	entries := make([]grid.Entry, 0, len(urls))
	for _, url := range urls {
		id, ok := youtube.ExtractVideoID(url)
		if !ok {
			log.Warnf("dropping saved url without video id: %q", url)
			continue
		}
		entries = append(entries, grid.Entry{ID: id, URL: url})
	}
	return entries
}

// Open loads the saved grid and keeps the file in sync with later changes.
// A corrupt file is logged and treated as empty.
func Open() *grid.Grid {
	g := grid.New()

	urls, err := Load()
	if err != nil {
		log.Error(err)
	}
	g.Load(Entries(urls))

	g.OnChange(func(urls []string) {
		if err := Save(urls); err != nil {
			log.Errorf("save grid: %v", err)
		}
	})
	return g
}
