package config

import "time"

// Default values for configuration.
const (
	// Server defaults
	DefaultServerHost      = "0.0.0.0"
	DefaultServerPort      = 8080
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second
	DefaultMaxContentBytes = 64 << 10

	// Discord defaults
	DefaultIgnoreBots = true

	// Speech defaults
	DefaultTimezone = "Asia/Tokyo"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	// DefaultConfigFile — файл конфигурации, который ищется в рабочем каталоге.
	DefaultConfigFile = "config.yml"
)
