package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "osintnexus"

	// DefaultBackendURL is the base URL of the analysis backend.
	DefaultBackendURL = "http://localhost:8001"

	// BackendURLEnv overrides the backend base URL from the environment.
	BackendURLEnv = "OSINT_NEXUS_BACKEND_URL"

	// DefaultTimeout of zero means requests wait until the caller gives up.
	// Closing the execution modal is the way out of a hung request.
	DefaultTimeout time.Duration = 0

	// DefaultListenAddress is where the mock server listens. It matches the
	// port of DefaultBackendURL so that both work together out of the box.
	DefaultListenAddress = "127.0.0.1:8001"

	// DefaultLatencyScale keeps the mock server's simulated tool latencies as-is.
	DefaultLatencyScale = 1.0

	// DefaultConcurrency bounds parallel executions for `exec` with several targets.
	DefaultConcurrency = 4

	// DefaultTorStartupTimeout is how long to wait for the embedded Tor daemon.
	DefaultTorStartupTimeout = 3 * time.Minute

	// DefaultUserAgent identifies the client to the backend.
	DefaultUserAgent = "osintnexus/1.0 (+https://github.com/nao1215/osintnexus)"
)

// Config holds all configuration options for OSINT Nexus.
// It is populated from defaults, the optional config file, the environment
// and CLI flags (in increasing precedence) and then passed down explicitly.
type Config struct {
	// BackendURL is the base URL used for every API request.
	BackendURL string

	// Timeout bounds each API request. Zero disables the timeout.
	Timeout time.Duration

	// Headers are extra HTTP headers sent with every API request
	// (for example an Authorization header for a protected backend).
	Headers map[string]string

	// UserAgent is sent with every API request.
	UserAgent string

	// ProxyAddress routes API requests through a SOCKS5 proxy in host:port form.
	// Empty means direct connections.
	ProxyAddress string

	// UseTor starts an embedded Tor daemon and routes API requests through it.
	UseTor bool

	// TorStartupTimeout is the maximum time to wait for the embedded Tor daemon.
	TorStartupTimeout time.Duration

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicit path of the config file, if any.
	ConfigFilePath string

	// PrefsPath is the preferences file (theme, color scheme, onboarding flag).
	PrefsPath string

	// LogFile is where the dashboard writes its log while it owns the terminal.
	LogFile string

	// ReportDir is where the dashboard exports execution reports.
	ReportDir string

	// ListenAddress is the mock server listen address.
	ListenAddress string

	// LatencyScale multiplies the mock server's simulated latencies.
	// Zero answers immediately.
	LatencyScale float64

	// DBDir is the directory of the mock server's investigation database.
	DBDir string

	// SaveToDB enables the mock server's investigation database.
	SaveToDB bool

	// Concurrency bounds parallel executions in batch mode.
	Concurrency int

	// JSONReport selects JSON output for headless execution.
	JSONReport bool

	// MarkdownReport selects Markdown output for headless execution.
	MarkdownReport bool

	// ReportFile is the output file for headless execution. Empty means stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BackendURL:        DefaultBackendURL,
		Timeout:           DefaultTimeout,
		UserAgent:         DefaultUserAgent,
		TorStartupTimeout: DefaultTorStartupTimeout,
		PrefsPath:         DefaultPrefsPath(),
		LogFile:           DefaultLogFile(),
		ReportDir:         DefaultReportDir(),
		ListenAddress:     DefaultListenAddress,
		LatencyScale:      DefaultLatencyScale,
		DBDir:             XDGDataDir(),
		SaveToDB:          true,
		Concurrency:       DefaultConcurrency,
	}
}

// XDGDataDir returns the XDG data directory for OSINT Nexus.
// On Linux: ~/.local/share/osintnexus
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for OSINT Nexus.
// On Linux: ~/.config/osintnexus
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGStateDir returns the XDG state directory for OSINT Nexus.
// On Linux: ~/.local/state/osintnexus
func XDGStateDir() string {
	return filepath.Join(xdg.StateHome, AppName)
}

// DefaultPrefsPath is the preferences file location.
func DefaultPrefsPath() string {
	return filepath.Join(XDGConfigDir(), "preferences.yaml")
}

// DefaultLogFile is the dashboard log file location.
func DefaultLogFile() string {
	return filepath.Join(XDGStateDir(), AppName+".log")
}

// DefaultReportDir is where exported reports go.
func DefaultReportDir() string {
	return filepath.Join(XDGDataDir(), "reports")
}

// ApplyEnv overrides settings from the environment. lookup is usually
// os.LookupEnv; tests pass a map-backed function.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(BackendURLEnv); ok && v != "" {
		c.BackendURL = v
	}
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if err := validateBackendURL(c.BackendURL); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	if c.LatencyScale < 0 {
		return ErrInvalidLatencyScale
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.UseTor && c.ProxyAddress != "" {
		return ErrConflictingTransport
	}
	return nil
}

func validateBackendURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackendURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBackendURL
	}
	return nil
}
