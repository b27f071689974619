package model

import "time"

// Config holds the complete provenir configuration
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Extrapolate ExtrapolateConfig `yaml:"extrapolate"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
}

// HTTPConfig controls outbound HTTP calls made by collaborators
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout"`        // per-call timeout
	UserAgent    string        `yaml:"user_agent"`     // User-Agent header
	MaxBodyBytes int64         `yaml:"max_body_bytes"` // response size cap
	HTTPProxy    string        `yaml:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy"`
}

// CacheConfig controls caching of network probe responses
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
	Dir     string        `yaml:"dir"`      // persist responses here across runs; empty keeps them in memory only
	DiskTTL time.Duration `yaml:"disk_ttl"` // lifetime of persisted entries
}

// ConcurrencyConfig controls parallelism and politeness
type ConcurrencyConfig struct {
	BatchWorkers      int     `yaml:"batch_workers"`       // parallel projects in batch mode
	RequestsPerSecond float64 `yaml:"requests_per_second"` // per-host probe rate
	Burst             int     `yaml:"burst"`
}

// ExtrapolateConfig controls the fact extrapolation engine
type ExtrapolateConfig struct {
	NetAccess      bool `yaml:"net_access"`      // allow network-backed rules
	IterationLimit int  `yaml:"iteration_limit"` // max passes before giving up
	TrustPackage   bool `yaml:"trust_package"`   // trust package contents as authoritative
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose bool   `yaml:"verbose"`
	Format  string `yaml:"format"` // "yaml" or "json"
}

// LLMConfig configures the optional summary generator
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "ollama", "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      5 * time.Second,
			UserAgent:    "Provenir/0.1 (+https://github.com/mkorsak/provenir)",
			MaxBodyBytes: 2_000_000,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
			DiskTTL: 24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers:      4,
			RequestsPerSecond: 2.0,
			Burst:             5,
		},
		Extrapolate: ExtrapolateConfig{
			NetAccess:      false,
			IterationLimit: 10,
			TrustPackage:   false,
		},
		Output: OutputConfig{
			Format: "yaml",
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 200,
		},
	}
}
