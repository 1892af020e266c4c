// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// YouTube Data API - these keys configure the credential and request budget for stream resolution.
const (
	YouTubeAPIKey            = "youtube.api_key"
	YouTubeRequestsPerSecond = "youtube.requests_per_second"
	YouTubeTimeout           = "youtube.timeout"
	YouTubeCacheHandles      = "youtube.cache_handles"
)

// Grid Behaviour - these keys govern how the stream grid is laid out and persisted.
const (
	GridColumns     = "grid.columns"
	GridTileHeight  = "grid.tile_height"
	GridShowURLs    = "grid.show_urls"
	GridShowChannel = "grid.show_channel"
)

// URL Input - these keys define the UX parameters for the paste prompt.
const (
	InputPromptString       = "input.prompt"
	InputShowURLSuggestions = "input.show_url_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Media Playback - these keys select and configure the per-tile player backend.
const (
	Player         = "player.default"
	PlayerMPVFlags = "player.mpv_flags"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
