// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Livegrid is the canonical application identifier used for filesystem paths and CLI branding.
	Livegrid = "livegrid"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is the HTTP User-Agent string sent with YouTube Data API requests.
	UserAgent = Livegrid + "/" + Version
)

// Build metadata, overridden at link time via -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
