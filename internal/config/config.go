// Package config holds the runtime settings shared by the play and serve
// commands. Values come from flags, environment variables, or a .env file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	DefaultAddr           = ":3000"
	DefaultAllowedOrigins = "http://localhost:5173"
	DefaultLogLevel       = "info"
)

type Config struct {
	Addr           string
	AllowedOrigins string
	LogLevel       string
	Pretty         bool
}

func Default() Config {
	return Config{
		Addr:           DefaultAddr,
		AllowedOrigins: DefaultAllowedOrigins,
		LogLevel:       DefaultLogLevel,
		Pretty:         true,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("listen address is required")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	for _, origin := range c.Origins() {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid origin %q", origin)
		}
	}
	return nil
}

// Origins splits AllowedOrigins on commas and drops blanks.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
