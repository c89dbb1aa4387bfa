// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RenderConfig holds settings for the render stage.
type RenderConfig struct {
	// JPEGQuality is the quality used when an image must be re-encoded to
	// JPEG during color-mode normalization (default 90).
	JPEGQuality int `json:"jpeg_quality" yaml:"jpeg_quality"`

	// DefaultFormat is the page format used when the manifest names none.
	// Unknown names still fall back to the built-in 8x8 default.
	DefaultFormat string `json:"default_format" yaml:"default_format"`
}

// LedgerConfig holds settings for the render history ledger.
type LedgerConfig struct {
	// Enabled controls whether renders are recorded. The ledger is opt-in;
	// a recording failure is a warning, never a render failure.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Dir is the directory holding the ledger database (bindery.db).
	Dir string `json:"dir" yaml:"dir"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Render RenderConfig `json:"render" yaml:"render"`
	Ledger LedgerConfig `json:"ledger" yaml:"ledger"`
}

// DefaultJPEGQuality is applied when RenderConfig.JPEGQuality is unset.
const DefaultJPEGQuality = 90
