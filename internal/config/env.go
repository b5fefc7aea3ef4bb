package config

// Environment variable keys.
const (
	// Server
	EnvAddr            = "A11Y_ADDR"
	EnvLogLevel        = "A11Y_LOG_LEVEL"
	EnvShutdownTimeout = "A11Y_SHUTDOWN_TIMEOUT"
	EnvMaxSessions     = "A11Y_MAX_SESSIONS"

	// Rendering
	EnvTheme    = "A11Y_THEME"
	EnvVariant  = "A11Y_VARIANT"
	EnvRenderer = "A11Y_RENDERER"
	EnvLocale   = "A11Y_LOCALE"

	// Data
	EnvCatalogDir = "A11Y_CATALOG_DIR"
	EnvThemeDir   = "A11Y_THEME_DIR"
)
