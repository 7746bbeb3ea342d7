package config

import (
	"fmt"
	"strings"
	"time"
)

// SeedConfig holds the mock data seeding settings. Delay simulates the
// initial data load from a backend after authentication.
type SeedConfig struct {
	Delay time.Duration `koanf:"delay"`
}

// String returns a string representation of the seed configuration.
func (c *SeedConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Seed ---\n")
	b.WriteString(fmt.Sprintf("  delay: %s\n", c.Delay))
	return b.String()
}

func (c *SeedConfig) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("invalid seed delay: %v", c.Delay)
	}
	return nil
}
