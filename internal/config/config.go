// Package config defines server configuration and its layered loading.
package config

// Config contains process configuration for the analysis server.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MCPPath is the HTTP path for the MCP endpoint.
	MCPPath string `koanf:"mcp_path"`

	// RawRoot and DerivedRoot are the cache directories for raw API JSON
	// and computed reports.
	RawRoot     string `koanf:"raw_root"`
	DerivedRoot string `koanf:"derived_root"`

	// WriteDerived controls whether computed reports are persisted under
	// DerivedRoot.
	WriteDerived bool `koanf:"write_derived"`

	// BaseURL points at the FPL classic API.
	BaseURL   string `koanf:"base_url"`
	UserAgent string `koanf:"user_agent"`

	// FetchWorkers bounds concurrent per-manager fetches.
	FetchWorkers int `koanf:"fetch_workers"`

	// SleepMS is the delay between uncached upstream requests.
	SleepMS int `koanf:"sleep_ms"`

	// UseCache serves raw responses from RawRoot when present.
	UseCache bool `koanf:"use_cache"`

	// DefaultTopN is used when a tool call omits n.
	DefaultTopN int `koanf:"default_top_n"`

	// RequireAuth gates the HTTP surface on FPL_MCP_API_KEY.
	RequireAuth bool   `koanf:"require_auth"`
	AuthHeader  string `koanf:"auth_header"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		Addr:         ":8080",
		MCPPath:      "/mcp",
		RawRoot:      "data/raw",
		DerivedRoot:  "data/derived",
		WriteDerived: true,
		BaseURL:      "https://fantasy.premierleague.com/api",
		UserAgent:    "fpl-league-analysis/1.0",
		FetchWorkers: 20,
		SleepMS:      250,
		UseCache:     true,
		DefaultTopN:  10,
		RequireAuth:  true,
		AuthHeader:   "X-API-Key",
	}
}
