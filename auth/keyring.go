// Package auth persists the YouTube Data API key in the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/livegrid/livegrid/constant"
	"github.com/livegrid/livegrid/key"
	"github.com/livegrid/livegrid/log"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const user = "youtube-api-key"

// ErrNoKey is returned by StoredAPIKey when the keyring holds no key.
var ErrNoKey = keyring.ErrNotFound

// SetAPIKey stores the key in the system keyring.
func SetAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(constant.Livegrid, user, apiKey)
}

// DeleteAPIKey removes the stored key. Deleting a missing key is not an error.
func DeleteAPIKey() error {
	err := keyring.Delete(constant.Livegrid, user)
	if errors.Is(err, ErrNoKey) {
		return nil
	}
	return err
}

// StoredAPIKey returns the key held by the keyring, if any.
func StoredAPIKey() (string, error) {
	return keyring.Get(constant.Livegrid, user)
}

// APIKey resolves the credential used for YouTube Data API calls.
// The youtube.api_key setting (or LIVEGRID_YOUTUBE_API_KEY) wins over the keyring.
// An empty result means no credential is configured.
func APIKey() string {
	if k := strings.TrimSpace(viper.GetString(key.YouTubeAPIKey)); k != "" {
		return k
	}

	stored, err := StoredAPIKey()
	if err != nil {
		if !errors.Is(err, ErrNoKey) {
			log.Warnf("keyring unavailable: %v", err)
		}
		return ""
	}
	return stored
}
