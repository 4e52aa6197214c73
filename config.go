package jscookie

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config provides environment-based defaults for a Jar.
type Config struct {
	Path        string  `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string  `env:"COOKIE_DOMAIN" envDefault:""`
	ExpiresDays float64 `env:"COOKIE_EXPIRES_DAYS" envDefault:"0"`
	Secure      bool    `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite    string  `env:"COOKIE_SAME_SITE" envDefault:""`
	Partitioned bool    `env:"COOKIE_PARTITIONED" envDefault:"false"`
}

// DefaultConfig returns the Config matching a plain New jar.
func DefaultConfig() Config {
	return Config{Path: "/"}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("load cookie config: %w", err)
	}
	return cfg, nil
}

// Attributes converts the config into default attributes. Zero fields are
// left out so they do not override anything.
func (c Config) Attributes() (Attributes, error) {
	var attrs Attributes
	if c.Path != "" {
		attrs = attrs.WithPath(c.Path)
	}
	if c.Domain != "" {
		attrs = attrs.WithDomain(c.Domain)
	}
	if c.ExpiresDays != 0 {
		attrs = attrs.WithExpires(c.ExpiresDays)
	}
	if c.Secure {
		attrs = attrs.WithSecure(true)
	}
	if c.SameSite != "" {
		mode, err := StringToSameSite(c.SameSite)
		if err != nil {
			return Attributes{}, err
		}
		attrs = attrs.WithSameSite(mode)
	}
	if c.Partitioned {
		attrs = attrs.WithPartitioned(true)
	}
	return attrs, nil
}

// NewFromConfig creates a Jar over store whose defaults come from cfg.
func NewFromConfig(cfg Config, store Store, opts ...Option) (*Jar, error) {
	attrs, err := cfg.Attributes()
	if err != nil {
		return nil, err
	}
	return New(store, opts...).WithAttributes(attrs), nil
}
