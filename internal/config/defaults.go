package config

// Output formats.
const (
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// Compression modes.
const (
	CompressNone = "none"
	CompressXZ   = "xz"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output: Output{
			Format:   FormatCSV,
			Compress: CompressNone,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}
