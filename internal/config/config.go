package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config is the resolved, immutable configuration for one running crawl
// service instance. Fields are private; callers build one with WithDefault
// and the With* chain, or load one from JSON with WithConfigFile.
type Config struct {
	//===============
	// Listener
	//===============
	// Loopback address the HTTP façade binds to, e.g. "127.0.0.1:8080".
	listenAddr string

	//===============
	// Crawl defaults
	//===============
	// Default worker pool size for a crawl, clamped to [3, 50].
	concurrency int
	// Wall-clock timeout applied to every outbound page fetch. robots.txt
	// fetches use their own client with a fixed 30s timeout.
	timeout time.Duration
	// User agent string sent with every outbound request.
	userAgent string

	//===============
	// Archiving
	//===============
	// Root directory archived pages are written under.
	archiveRoot string

	//===============
	// Policy
	//===============
	// Whether the robots.txt policy hook is consulted by default when a
	// request does not explicitly set robots_txt.
	robotsEnabledByDefault bool
}

type configDTO struct {
	ListenAddr             string        `json:"listenAddr,omitempty"`
	Concurrency            int           `json:"concurrency,omitempty"`
	Timeout                time.Duration `json:"timeout,omitempty"`
	UserAgent              string        `json:"userAgent,omitempty"`
	ArchiveRoot            string        `json:"archiveRoot,omitempty"`
	RobotsEnabledByDefault bool          `json:"robotsEnabledByDefault,omitempty"`
}

func newConfigFromDTO(dto configDTO) (Config, error) {
	cfg := WithDefault()

	if dto.ListenAddr != "" {
		cfg.listenAddr = dto.ListenAddr
	}
	if dto.Concurrency != 0 {
		cfg.concurrency = dto.Concurrency
	}
	if dto.Timeout != 0 {
		cfg.timeout = dto.Timeout
	}
	if dto.UserAgent != "" {
		cfg.userAgent = dto.UserAgent
	}
	if dto.ArchiveRoot != "" {
		cfg.archiveRoot = dto.ArchiveRoot
	}
	cfg.robotsEnabledByDefault = dto.RobotsEnabledByDefault

	return cfg.Build()
}

func WithConfigFile(path string) (Config, error) {
	_, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	configContent, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}
	cfgDTO := configDTO{}

	if err := json.Unmarshal(configContent, &cfgDTO); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
	}

	cfg, err := newConfigFromDTO(cfgDTO)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithDefault creates a new Config builder seeded with the reference
// defaults from the crawl engine design: 10 workers, a loopback listener on
// :8080, and a 10s fetch timeout.
func WithDefault() *Config {
	defaultConfig := Config{
		listenAddr:             "127.0.0.1:8080",
		concurrency:            10,
		timeout:                10 * time.Second,
		userAgent:              "web-crawler/1.0",
		archiveRoot:            "downloaded",
		robotsEnabledByDefault: false,
	}
	return &defaultConfig
}

func (c *Config) WithListenAddr(addr string) *Config {
	c.listenAddr = addr
	return c
}

func (c *Config) WithConcurrency(concurrency int) *Config {
	c.concurrency = concurrency
	return c
}

func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.timeout = timeout
	return c
}

func (c *Config) WithUserAgent(agent string) *Config {
	c.userAgent = agent
	return c
}

func (c *Config) WithArchiveRoot(dir string) *Config {
	c.archiveRoot = dir
	return c
}

func (c *Config) WithRobotsEnabledByDefault(enabled bool) *Config {
	c.robotsEnabledByDefault = enabled
	return c
}

// Build validates and clamps the builder into an immutable Config. Worker
// count is clamped to [3, 50] per the reference crawl engine design.
func (c *Config) Build() (Config, error) {
	if c.listenAddr == "" {
		return Config{}, fmt.Errorf("%w: listenAddr cannot be empty", ErrInvalidConfig)
	}
	if c.concurrency < 3 {
		c.concurrency = 3
	}
	if c.concurrency > 50 {
		c.concurrency = 50
	}
	if c.timeout <= 0 {
		return Config{}, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}

	return *c, nil
}

func (c Config) ListenAddr() string {
	return c.listenAddr
}

func (c Config) Concurrency() int {
	return c.concurrency
}

func (c Config) Timeout() time.Duration {
	return c.timeout
}

func (c Config) UserAgent() string {
	return c.userAgent
}

func (c Config) ArchiveRoot() string {
	return c.archiveRoot
}

func (c Config) RobotsEnabledByDefault() bool {
	return c.robotsEnabledByDefault
}
