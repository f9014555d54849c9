package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"OPENAI_API_KEY",
	"OPENAI_BASE_URL",
	"OPENAI_MODEL",
	"OPENAI_MAX_RETRIES",
	"OPENAI_TIMEOUT_MS",
	"REASONING_EFFORT",
	"DEFAULT_VERBOSITY",
	"WEB_SEARCH_DEFAULT_ENABLED",
	"WEB_SEARCH_CONTEXT_SIZE",
	"GPT5_MCP_VERBOSE",
	"GPT5_MCP_TRANSPORT",
	"GPT5_MCP_ADDR",
	"GPT5_MCP_ACCESS_TOKEN",
}

// setenv sets an env var for the duration of a test, restoring the original on cleanup.
func setenv(t *testing.T, key, value string) {
	t.Helper()
	original, had := os.LookupEnv(key)
	os.Setenv(key, value) //nolint:errcheck
	t.Cleanup(func() {
		if had {
			os.Setenv(key, original) //nolint:errcheck
		} else {
			os.Unsetenv(key) //nolint:errcheck
		}
	})
}

// unsetenv removes an env var for the duration of a test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	original, had := os.LookupEnv(key)
	os.Unsetenv(key) //nolint:errcheck
	t.Cleanup(func() {
		if had {
			os.Setenv(key, original) //nolint:errcheck
		} else {
			os.Unsetenv(key) //nolint:errcheck
		}
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		unsetenv(t, key)
	}
}

// TestDefaultFromEnvDefaults checks that DefaultFromEnv returns expected defaults
// when no environment variables are set.
func TestDefaultFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := DefaultFromEnv()

	if cfg.APIKey != "" {
		t.Errorf("APIKey: got %q, want empty", cfg.APIKey)
	}
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL: got %q, want empty", cfg.BaseURL)
	}
	if cfg.Model != "gpt-5" {
		t.Errorf("Model: got %q, want %q", cfg.Model, "gpt-5")
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries: got %d, want 3", cfg.MaxRetries)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout: got %v, want 60s", cfg.Timeout)
	}
	if cfg.ReasoningEffort != "medium" {
		t.Errorf("ReasoningEffort: got %q, want %q", cfg.ReasoningEffort, "medium")
	}
	if cfg.Verbosity != "medium" {
		t.Errorf("Verbosity: got %q, want %q", cfg.Verbosity, "medium")
	}
	if cfg.WebSearchDefaultEnabled {
		t.Error("WebSearchDefaultEnabled should be false by default")
	}
	if cfg.WebSearchContextSize != "medium" {
		t.Errorf("WebSearchContextSize: got %q, want %q", cfg.WebSearchContextSize, "medium")
	}
	if cfg.Verbose {
		t.Error("Verbose should be false by default")
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("Transport: got %q, want %q", cfg.Transport, TransportStdio)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr: got %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.AccessToken != "" {
		t.Errorf("AccessToken: got %q, want empty", cfg.AccessToken)
	}
}

// TestDefaultFromEnvOverrides verifies that environment variables override defaults.
func TestDefaultFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	setenv(t, "OPENAI_API_KEY", " sk-secret ")
	setenv(t, "OPENAI_BASE_URL", "http://localhost:9999/v1")
	setenv(t, "OPENAI_MODEL", "gpt-5-mini")
	setenv(t, "OPENAI_MAX_RETRIES", "0")
	setenv(t, "OPENAI_TIMEOUT_MS", "1500")
	setenv(t, "REASONING_EFFORT", "LOW")
	setenv(t, "DEFAULT_VERBOSITY", " High ")
	setenv(t, "WEB_SEARCH_DEFAULT_ENABLED", "yes")
	setenv(t, "WEB_SEARCH_CONTEXT_SIZE", "low")
	setenv(t, "GPT5_MCP_VERBOSE", "1")
	setenv(t, "GPT5_MCP_TRANSPORT", "HTTP")
	setenv(t, "GPT5_MCP_ADDR", "0.0.0.0:9000")
	setenv(t, "GPT5_MCP_ACCESS_TOKEN", "local-token")

	cfg := DefaultFromEnv()

	if cfg.APIKey != "sk-secret" {
		t.Errorf("APIKey: got %q, want %q", cfg.APIKey, "sk-secret")
	}
	if cfg.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("BaseURL: got %q", cfg.BaseURL)
	}
	if cfg.Model != "gpt-5-mini" {
		t.Errorf("Model: got %q, want %q", cfg.Model, "gpt-5-mini")
	}
	if cfg.MaxRetries != 0 {
		t.Errorf("MaxRetries: got %d, want 0", cfg.MaxRetries)
	}
	if cfg.Timeout != 1500*time.Millisecond {
		t.Errorf("Timeout: got %v, want 1.5s", cfg.Timeout)
	}
	// enum values are lowercased and trimmed; "low" is kept as-is here and
	// aliased later by the normalizer.
	if cfg.ReasoningEffort != "low" {
		t.Errorf("ReasoningEffort: got %q, want %q", cfg.ReasoningEffort, "low")
	}
	if cfg.Verbosity != "high" {
		t.Errorf("Verbosity: got %q, want %q", cfg.Verbosity, "high")
	}
	if !cfg.WebSearchDefaultEnabled {
		t.Error("WebSearchDefaultEnabled should be true when env is 'yes'")
	}
	if cfg.WebSearchContextSize != "low" {
		t.Errorf("WebSearchContextSize: got %q, want %q", cfg.WebSearchContextSize, "low")
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true when env is '1'")
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("Transport: got %q, want %q", cfg.Transport, TransportHTTP)
	}
	if cfg.Addr != "0.0.0.0:9000" {
		t.Errorf("Addr: got %q", cfg.Addr)
	}
	if cfg.AccessToken != "local-token" {
		t.Errorf("AccessToken: got %q", cfg.AccessToken)
	}
}

// TestDefaultFromEnvInvalidValues checks that unusable values are dropped or
// replaced rather than passed through.
func TestDefaultFromEnvInvalidValues(t *testing.T) {
	clearEnv(t)
	setenv(t, "OPENAI_MAX_RETRIES", "many")
	setenv(t, "OPENAI_TIMEOUT_MS", "-1")
	setenv(t, "REASONING_EFFORT", "extreme")
	setenv(t, "DEFAULT_VERBOSITY", "chatty")
	setenv(t, "WEB_SEARCH_CONTEXT_SIZE", "huge")
	setenv(t, "GPT5_MCP_TRANSPORT", "carrier-pigeon")

	cfg := DefaultFromEnv()

	if cfg.MaxRetries != DefaultRetries {
		t.Errorf("MaxRetries: got %d, want %d", cfg.MaxRetries, DefaultRetries)
	}
	if cfg.Timeout != DefaultTimeoutMS*time.Millisecond {
		t.Errorf("Timeout: got %v", cfg.Timeout)
	}
	if cfg.ReasoningEffort != "" {
		t.Errorf("ReasoningEffort: got %q, want empty", cfg.ReasoningEffort)
	}
	if cfg.Verbosity != "" {
		t.Errorf("Verbosity: got %q, want empty", cfg.Verbosity)
	}
	if cfg.WebSearchContextSize != "" {
		t.Errorf("WebSearchContextSize: got %q, want empty", cfg.WebSearchContextSize)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("Transport: got %q, want %q", cfg.Transport, TransportStdio)
	}
}

// TestEnvBoolVariants checks all accepted truthy values for boolean env vars.
func TestEnvBoolVariants(t *testing.T) {
	truthy := []string{"1", "true", "yes", "on", "TRUE", "YES", "ON"}
	for _, val := range truthy {
		t.Run(val, func(t *testing.T) {
			setenv(t, "WEB_SEARCH_DEFAULT_ENABLED", val)
			cfg := DefaultFromEnv()
			if !cfg.WebSearchDefaultEnabled {
				t.Errorf("expected WebSearchDefaultEnabled=true for env value %q", val)
			}
		})
	}

	falsy := []string{"0", "false", "no", "off", ""}
	for _, val := range falsy {
		t.Run("false_"+val, func(t *testing.T) {
			setenv(t, "WEB_SEARCH_DEFAULT_ENABLED", val)
			cfg := DefaultFromEnv()
			if cfg.WebSearchDefaultEnabled {
				t.Errorf("expected WebSearchDefaultEnabled=false for env value %q", val)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	setenv(t, "OPENAI_MODEL", "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	content := "OPENAI_API_KEY=sk-from-file\nOPENAI_MODEL=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}

	cfg := DefaultFromEnv()
	if cfg.APIKey != "sk-from-file" {
		t.Errorf("APIKey: got %q, want %q", cfg.APIKey, "sk-from-file")
	}
	// process environment wins over the file
	if cfg.Model != "from-process" {
		t.Errorf("Model: got %q, want %q", cfg.Model, "from-process")
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if err := LoadEnvFile(""); err != nil {
		t.Fatalf("empty path should not be an error, got %v", err)
	}
}

func TestMaskedAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "<unset>"},
		{"short", "*****"},
		{"sk-abcdefghijklmnop", "sk-...mnop"},
	}
	for _, tt := range tests {
		cfg := &Config{APIKey: tt.key}
		if got := cfg.MaskedAPIKey(); got != tt.want {
			t.Errorf("MaskedAPIKey(%q): got %q, want %q", tt.key, got, tt.want)
		}
	}
}
