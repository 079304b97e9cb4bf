// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download behaviour - these keys shape how individual files are written.
const (
	DownloadExtension = "download.extension"
	DownloadRetries   = "download.retries"
)

// Network - these keys configure the HTTP client used against the portal.
const (
	NetworkTimeout        = "network.timeout"
	NetworkUserAgent      = "network.user_agent"
	NetworkImpersonateTLS = "network.impersonate_tls"
)

// Scraper - these keys describe the portal's page structure.
const (
	ScraperListSelector  = "scraper.list_selector"
	ScraperItemSelector  = "scraper.item_selector"
	ScraperURLAttribute  = "scraper.url_attribute"
	ScraperTitleSelector = "scraper.title_selector"
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

// CLI Execution Environment - these flags and settings govern general application behaviour.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
