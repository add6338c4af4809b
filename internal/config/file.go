package config

import (
	"fmt"
	"time"
)

// File represents the structure of the .osintnexus configuration file.
// Every field is optional; unset fields leave the corresponding Config value alone.
type File struct {
	// BackendURL is the analysis backend base URL.
	BackendURL string `yaml:"backend_url,omitempty"`

	// Timeout is a Go duration string such as "30s". "0" disables the timeout.
	Timeout string `yaml:"timeout,omitempty"`

	// Headers are sent with every API request.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Proxy is a SOCKS5 proxy address in host:port form.
	Proxy string `yaml:"proxy,omitempty"`

	// Tor starts the embedded Tor daemon for API requests.
	Tor bool `yaml:"tor,omitempty"`

	// Server holds the mock server settings.
	Server ServerFile `yaml:"server,omitempty"`
}

// ServerFile holds the `server:` section of the configuration file.
type ServerFile struct {
	Listen string `yaml:"listen,omitempty"`

	// LatencyScale is a pointer so that an explicit 0 can be told apart from unset.
	LatencyScale *float64 `yaml:"latency_scale,omitempty"`

	DBDir string `yaml:"db_dir,omitempty"`

	// DisableDB turns off the investigation database.
	DisableDB bool `yaml:"disable_db,omitempty"`
}

// ApplyFile copies the values set in f onto c.
func (c *Config) ApplyFile(f *File) error {
	if f == nil {
		return nil
	}
	if f.BackendURL != "" {
		c.BackendURL = f.BackendURL
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", f.Timeout, err)
		}
		c.Timeout = d
	}
	if len(f.Headers) > 0 {
		if c.Headers == nil {
			c.Headers = make(map[string]string, len(f.Headers))
		}
		for k, v := range f.Headers {
			c.Headers[k] = v
		}
	}
	if f.Proxy != "" {
		c.ProxyAddress = f.Proxy
	}
	if f.Tor {
		c.UseTor = true
	}
	if f.Server.Listen != "" {
		c.ListenAddress = f.Server.Listen
	}
	if f.Server.LatencyScale != nil {
		c.LatencyScale = *f.Server.LatencyScale
	}
	if f.Server.DBDir != "" {
		c.DBDir = f.Server.DBDir
	}
	if f.Server.DisableDB {
		c.SaveToDB = false
	}
	return nil
}
