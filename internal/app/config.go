package app

import "fmt"

// Config carries the validated application settings.
type Config struct {
	ModelPath string
	Draws     int
	Seed      uint64
	LogLevel  string
	LogFormat string
}

// NewConfig validates a candidate configuration and returns it.
func NewConfig(c Config) (*Config, error) {
	if c.ModelPath == "" {
		return nil, fmt.Errorf("model path must not be empty")
	}
	if c.Draws <= 0 {
		return nil, fmt.Errorf("draws must be positive, got %d", c.Draws)
	}
	return &c, nil
}
