package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/n0madic/gpt5-mcp/internal/config"
	"github.com/n0madic/gpt5-mcp/internal/normalize"
	"github.com/n0madic/gpt5-mcp/internal/query"
	"github.com/n0madic/gpt5-mcp/internal/server"
	"github.com/n0madic/gpt5-mcp/internal/types"
	"github.com/n0madic/gpt5-mcp/internal/upstream"
)

func main() {
	// MCP clients launch the binary without arguments.
	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		os.Exit(cmdServe(os.Args[1:]))
	}

	switch os.Args[1] {
	case "serve":
		os.Exit(cmdServe(os.Args[2:]))
	case "query":
		os.Exit(cmdQuery(os.Args[2:]))
	case "info":
		os.Exit(cmdInfo(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Commands: serve, query, info")
		os.Exit(1)
	}
}

// loadConfig reads the env file named by -env-file (or GPT5_MCP_ENV_FILE)
// before building the Config, so file values act as env defaults.
func loadConfig(args []string) *config.Config {
	envFile := config.DefaultEnvFile
	if v := os.Getenv("GPT5_MCP_ENV_FILE"); v != "" {
		envFile = v
	}
	for i, a := range args {
		switch {
		case strings.HasPrefix(a, "-env-file="), strings.HasPrefix(a, "--env-file="):
			envFile = a[strings.Index(a, "=")+1:]
		case (a == "-env-file" || a == "--env-file") && i+1 < len(args):
			envFile = args[i+1]
		}
	}
	if err := config.LoadEnvFile(envFile); err != nil {
		slog.Warn("failed to load env file", "path", envFile, "error", err)
	}
	return config.DefaultFromEnv()
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func cmdServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfg := loadConfig(args)

	fs.String("env-file", config.DefaultEnvFile, "Env file loaded before reading configuration")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "MCP transport (stdio|http)")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address for the http transport")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Default model")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable verbose logging")
	fs.BoolVar(&cfg.WebSearchDefaultEnabled, "enable-web-search", cfg.WebSearchDefaultEnabled, "Enable web search by default")
	fs.Parse(args)
	cfg.Sanitize()

	setupLogging(cfg.Verbose)
	if cfg.APIKey == "" {
		slog.Warn("OPENAI_API_KEY is not set. Please set it in your environment or .env file.")
	}

	srv := server.New(cfg, query.NewExecutor(cfg, upstream.NewClient(cfg)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Transport == config.TransportHTTP {
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			return 1
		}
		return 0
	}

	if err := srv.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		slog.Error("server error", "error", err)
		return 1
	}
	return 0
}

func cmdQuery(args []string) int {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	cfg := loadConfig(args)

	var (
		in            types.QueryInput
		effort        string
		verbosity     string
		toolChoice    string
		contextSize   string
		webSearch     string
		noParallel    bool
		dryRun        bool
		verbose       = cfg.Verbose
		maxOutputToks int64
	)
	fs.String("env-file", config.DefaultEnvFile, "Env file loaded before reading configuration")
	fs.StringVar(&in.Model, "model", "", "Model override")
	fs.StringVar(&in.System, "system", "", "System instructions")
	fs.StringVar(&effort, "reasoning-effort", "", "Reasoning effort (low|minimal|medium|high)")
	fs.StringVar(&verbosity, "verbosity", "", "Verbosity (low|medium|high)")
	fs.StringVar(&toolChoice, "tool-choice", "", "Tool choice (auto|none)")
	fs.StringVar(&webSearch, "web-search", "", "Force web search on or off (true|false)")
	fs.StringVar(&contextSize, "search-context-size", "", "Web search context size (low|medium|high)")
	fs.BoolVar(&noParallel, "no-parallel-tool-calls", false, "Disable parallel tool calls")
	fs.Int64Var(&maxOutputToks, "max-output-tokens", 0, "Maximum output tokens")
	fs.BoolVar(&dryRun, "dry-run", false, "Print the request instead of sending it")
	fs.BoolVar(&verbose, "verbose", verbose, "Enable verbose logging")
	fs.Parse(args)

	cfg.Verbose = verbose
	setupLogging(cfg.Verbose)

	in.Query = strings.TrimSpace(strings.Join(fs.Args(), " "))
	in.ReasoningEffort = types.ReasoningEffort(effort)
	in.Verbosity = types.Verbosity(verbosity)
	in.ToolChoice = types.ToolChoice(toolChoice)
	in.MaxOutputTokens = maxOutputToks
	if noParallel {
		in.ParallelToolCalls = types.BoolPtr(false)
	}
	if webSearch != "" || contextSize != "" {
		in.WebSearch = &types.WebSearchInput{SearchContextSize: types.SearchContextSize(contextSize)}
		if webSearch != "" {
			in.WebSearch.Enabled = types.BoolPtr(webSearch == "true" || webSearch == "1" || webSearch == "on")
		}
	}

	if err := in.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Usage: gpt5-mcp query [flags] <text>")
		return 2
	}

	if dryRun {
		data, _ := json.MarshalIndent(normalize.BuildRequest(in, cfg), "", "  ")
		fmt.Println(string(data))
		return 0
	}

	if cfg.APIKey == "" {
		slog.Warn("OPENAI_API_KEY is not set. Please set it in your environment or .env file.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res := query.NewExecutor(cfg, upstream.NewClient(cfg)).Run(ctx, in)
	if res.IsError {
		fmt.Fprintln(os.Stderr, res.Text)
		return 1
	}
	fmt.Println(res.Text)
	return 0
}

func cmdInfo(args []string) int {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	cfg := loadConfig(args)
	jsonOut := fs.Bool("json", false, "Output configuration as JSON")
	fs.String("env-file", config.DefaultEnvFile, "Env file loaded before reading configuration")
	fs.Parse(args)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "(SDK default)"
	}
	fields := []struct{ key, value string }{
		{"server", config.ServerName + " " + config.ServerVersion},
		{"api_key", cfg.MaskedAPIKey()},
		{"base_url", baseURL},
		{"model", cfg.Model},
		{"max_retries", fmt.Sprint(cfg.MaxRetries)},
		{"timeout", cfg.Timeout.String()},
		{"reasoning_effort", orUnset(string(cfg.ReasoningEffort))},
		{"verbosity", orUnset(string(cfg.Verbosity))},
		{"web_search_default", fmt.Sprint(cfg.WebSearchDefaultEnabled)},
		{"web_search_context_size", orUnset(string(cfg.WebSearchContextSize))},
		{"transport", cfg.Transport},
		{"addr", cfg.Addr},
	}

	if *jsonOut {
		out := make(map[string]string, len(fields))
		for _, f := range fields {
			out[f.key] = f.value
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return 0
	}

	fmt.Println("⚙️  Configuration")
	for _, f := range fields {
		fmt.Printf("  • %-24s %s\n", f.key+":", f.value)
	}
	return 0
}

func orUnset(v string) string {
	if v == "" {
		return "<unset>"
	}
	return v
}
