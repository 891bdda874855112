package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIURL    = "CHECKMYPASS_API_URL"
	EnvTimeout   = "CHECKMYPASS_TIMEOUT"
	EnvPadding   = "CHECKMYPASS_PADDING"
	EnvMode      = "CHECKMYPASS_MODE"
	EnvUserAgent = "CHECKMYPASS_USER_AGENT"
)

// Config holds the settings of a range lookup run. Zero values are never
// used directly; start from Default.
type Config struct {
	APIURL    string        `toml:"api_url"`
	Timeout   time.Duration `toml:"timeout"`
	Padding   bool          `toml:"padding"`
	Mode      string        `toml:"mode"`
	UserAgent string        `toml:"user_agent"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		APIURL:    RANGE_API_URL,
		Timeout:   HTTP_CLIENT_TIMEOUT,
		Mode:      DEFAULT_MODE,
		UserAgent: HTTP_CLIENT_USER_AGENT,
	}
}

// LoadFile overlays the keys present in the TOML file at path onto c.
func (c *Config) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("unable to load config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays the variables that lookup reports as set. lookup is
// normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		c.APIURL = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := lookup(EnvPadding); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPadding, err)
		}
		c.Padding = b
	}
	if v, ok := lookup(EnvMode); ok && v != "" {
		c.Mode = v
	}
	if v, ok := lookup(EnvUserAgent); ok && v != "" {
		c.UserAgent = v
	}
	return nil
}

// Validate rejects settings the fetcher cannot work with. The hash mode is
// checked by hibp.ParseMode.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api url scheme %q", u.Scheme)
	}
	return nil
}
