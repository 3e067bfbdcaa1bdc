// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Watch Page Retrieval - these keys control how watch pages are requested.
const (
	FetchHost      = "fetch.host"
	FetchUserAgent = "fetch.user_agent"
)

// Transport - these keys tune the shared HTTP client.
const (
	NetworkFingerprint    = "network.fingerprint"
	NetworkTimeoutSeconds = "network.timeout_seconds"
)

// Downloads - these keys configure where and how media streams are saved.
const (
	DownloadDirectory = "download.directory"
	DownloadOverwrite = "download.overwrite"
)

// History Tracking - these keys configure the persistence of lookups.
const (
	HistorySave = "history.save"
)

// Suggestions - these keys define completion behaviour for video identifiers.
const (
	SearchShowSuggestions = "search.show_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
