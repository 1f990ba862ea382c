package renderer

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"tiny image", func(c *Config) { c.Width, c.Height = 2, 2 }, false},
		{"one pixel wide", func(c *Config) { c.Width = 1 }, true},
		{"zero height", func(c *Config) { c.Height = 0 }, true},
		{"no samples", func(c *Config) { c.SamplesPerPixel = 0 }, true},
		{"no depth", func(c *Config) { c.MaxDepth = 0 }, true},
		{"no workers", func(c *Config) { c.NumWorkers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)

			err := config.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestSamplesPerWorker(t *testing.T) {
	tests := []struct {
		total, workers, expected int
	}{
		{100, 8, 13},
		{8, 8, 1},
		{1, 4, 1},
		{10, 3, 4},
		{64, 1, 64},
		{12, 4, 3},
	}

	for _, tt := range tests {
		if got := SamplesPerWorker(tt.total, tt.workers); got != tt.expected {
			t.Errorf("SamplesPerWorker(%d, %d): expected %d, got %d", tt.total, tt.workers, tt.expected, got)
		}
	}
}
