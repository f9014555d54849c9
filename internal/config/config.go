package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/n0madic/gpt5-mcp/internal/types"
)

const (
	ServerName    = "gpt5-mcp"
	ServerVersion = "0.1.0"

	DefaultModel     = "gpt-5"
	DefaultRetries   = 3
	DefaultTimeoutMS = 60000
	DefaultEnvFile   = ".env"
	DefaultAddr      = "127.0.0.1:8000"

	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds the process-wide defaults. It is built once at startup and
// only read afterwards.
type Config struct {
	APIKey                  string
	BaseURL                 string
	Model                   string
	MaxRetries              int
	Timeout                 time.Duration
	ReasoningEffort         types.ReasoningEffort
	Verbosity               types.Verbosity
	WebSearchDefaultEnabled bool
	WebSearchContextSize    types.SearchContextSize
	Verbose                 bool

	// MCP transport settings.
	Transport   string
	Addr        string
	AccessToken string
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set are left untouched and a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// DefaultFromEnv creates a Config with defaults from environment variables.
func DefaultFromEnv() *Config {
	cfg := &Config{
		APIKey:                  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		BaseURL:                 strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		Model:                   envOrDefault("OPENAI_MODEL", DefaultModel),
		MaxRetries:              envInt("OPENAI_MAX_RETRIES", DefaultRetries),
		Timeout:                 time.Duration(envInt("OPENAI_TIMEOUT_MS", DefaultTimeoutMS)) * time.Millisecond,
		ReasoningEffort:         types.ReasoningEffort(envEnum("REASONING_EFFORT", "medium")),
		Verbosity:               types.Verbosity(envEnum("DEFAULT_VERBOSITY", "medium")),
		WebSearchDefaultEnabled: envBool("WEB_SEARCH_DEFAULT_ENABLED"),
		WebSearchContextSize:    types.SearchContextSize(envEnum("WEB_SEARCH_CONTEXT_SIZE", "medium")),
		Verbose:                 envBool("GPT5_MCP_VERBOSE"),
		Transport:               envEnum("GPT5_MCP_TRANSPORT", TransportStdio),
		Addr:                    envOrDefault("GPT5_MCP_ADDR", DefaultAddr),
		AccessToken:             strings.TrimSpace(os.Getenv("GPT5_MCP_ACCESS_TOKEN")),
	}
	cfg.Sanitize()
	return cfg
}

// Sanitize drops enum defaults that the API would reject. The field is left
// empty so the normalizer omits it instead of sending an invalid value.
func (c *Config) Sanitize() {
	if c.ReasoningEffort != "" && !c.ReasoningEffort.Valid() {
		slog.Warn("ignoring invalid default reasoning effort", "value", c.ReasoningEffort)
		c.ReasoningEffort = ""
	}
	if c.Verbosity != "" && !c.Verbosity.Valid() {
		slog.Warn("ignoring invalid default verbosity", "value", c.Verbosity)
		c.Verbosity = ""
	}
	if c.WebSearchContextSize != "" && !c.WebSearchContextSize.Valid() {
		slog.Warn("ignoring invalid default search context size", "value", c.WebSearchContextSize)
		c.WebSearchContextSize = ""
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeoutMS * time.Millisecond
	}
	if strings.TrimSpace(c.Model) == "" {
		c.Model = DefaultModel
	}
	if c.Transport != TransportStdio && c.Transport != TransportHTTP {
		slog.Warn("unknown transport; using stdio", "value", c.Transport)
		c.Transport = TransportStdio
	}
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = DefaultAddr
	}
}

// MaskedAPIKey returns the API key with everything but the last four
// characters hidden, for display purposes.
func (c *Config) MaskedAPIKey() string {
	if c.APIKey == "" {
		return "<unset>"
	}
	if len(c.APIKey) <= 8 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return c.APIKey[:3] + "..." + c.APIKey[len(c.APIKey)-4:]
}

func envOrDefault(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func envEnum(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring non-numeric environment value", "key", key, "value", v)
		return defaultVal
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}
