package pdf

// Config holds page-description rendering settings.
type Config struct {
	// PageSize is "letter" or "a4".
	PageSize string
	// CoreFontsOnly disables host font discovery and uses the
	// built-in core fonts (Latin-1 coverage only).
	CoreFontsOnly bool
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		PageSize: "letter",
	}
}
