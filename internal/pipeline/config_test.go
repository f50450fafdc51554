package pipeline

import (
	"testing"

	"github.com/comicink/pagestamp/internal/watermark"
)

func validConfig() Config {
	cfg := Defaults()
	cfg.WatermarkPath = "wm.png"
	cfg.InputRoot = "in"
	cfg.OutputRoot = "out"
	return cfg
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing watermark", func(c *Config) { c.WatermarkPath = "" }, true},
		{"missing input", func(c *Config) { c.InputRoot = "" }, true},
		{"missing output", func(c *Config) { c.OutputRoot = "" }, true},
		{"unknown anchor", func(c *Config) { c.Anchor = "north" }, true},
		{"unknown format", func(c *Config) { c.Format = "webp" }, true},
		{"format keep", func(c *Config) { c.Format = FormatKeep }, false},
		{"format png", func(c *Config) { c.Format = FormatPNG }, false},
		{"quality zero", func(c *Config) { c.Quality = 0 }, true},
		{"quality over 100", func(c *Config) { c.Quality = 101 }, true},
		{"quality boundary low", func(c *Config) { c.Quality = 1 }, false},
		{"quality boundary high", func(c *Config) { c.Quality = 100 }, false},
		{"negative sample", func(c *Config) { c.Sample = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate should have failed")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Anchor != watermark.AnchorBottomRight {
		t.Errorf("anchor: got %s, want bottom-right", cfg.Anchor)
	}
	if cfg.Margin != 16 || cfg.Scale != 0.25 || cfg.Opacity != 0.6 || cfg.Quality != 92 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Recursive {
		t.Error("recursive should default on")
	}
	if cfg.Format != FormatJPEG {
		t.Errorf("format: got %s, want jpeg", cfg.Format)
	}
}
