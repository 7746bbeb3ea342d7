package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthConfig holds the session gate settings.
// LoginDelay simulates the latency of the identity backend the fixed
// credential table stands in for.
type AuthConfig struct {
	LoginDelay time.Duration `koanf:"loginDelay"`
}

// String returns a string representation of the auth configuration.
func (c *AuthConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Auth ---\n")
	b.WriteString(fmt.Sprintf("  loginDelay: %s\n", c.LoginDelay))
	return b.String()
}

func (c *AuthConfig) Validate() error {
	if c.LoginDelay < 0 {
		return fmt.Errorf("invalid auth login delay: %v", c.LoginDelay)
	}
	return nil
}
