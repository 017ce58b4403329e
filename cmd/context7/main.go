package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/context7"
	c7http "github.com/fwojciec/context7/http"
	c7otel "github.com/fwojciec/context7/otel"
	c7slog "github.com/fwojciec/context7/slog"
	c7yaml "github.com/fwojciec/context7/yaml"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file read when --config is not given. A missing file is
	// ignored. Set before calling Run().
	ConfigPath string

	// Config is the effective configuration, resolved during Run().
	Config context7.Config

	// LibraryService replaces the HTTP client for end-to-end testing.
	LibraryService context7.LibraryService

	// Telemetry exporters, initialized during Run().
	Telemetry *c7otel.Provider
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: c7yaml.DefaultPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Telemetry != nil {
		return m.Telemetry.Shutdown(context.Background())
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// kong calls Exit after printing help; record it instead of exiting so
	// "context7 search --help" succeeds without its required arguments.
	helped := false

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("context7"),
		kong.Description("Search the Context7 documentation index and fetch library docs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helped = true }),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'context7 --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parsing rejects unknown sort fields before anything touches the network.
	kongCtx, err := parser.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return err
	}

	if m.Config, err = m.loadConfig(cli); err != nil {
		fmt.Fprintln(stderr, "Hint: Check the config file or CONTEXT7_* environment variables")
		return err
	}

	logger := c7slog.NewLogger(stderr, m.Config.LogLevel)
	deps.Logger = logger

	m.Telemetry, err = c7otel.Init(ctx, c7otel.Config{
		ServiceName:    "context7",
		ServiceVersion: version,
		Endpoint:       m.Config.OTLPEndpoint,
		Insecure:       m.Config.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer m.Close()

	var libraries context7.LibraryService = m.LibraryService
	if libraries == nil {
		libraries = c7http.NewLibraryService(
			c7http.WithBaseURL(m.Config.BaseURL),
			c7http.WithTimeout(m.Config.Timeout),
			c7http.WithAPIKey(m.Config.APIKey),
			c7http.WithRateLimit(m.Config.RequestsPerSecond),
		)
	}
	libraries = c7slog.NewLoggingLibraryService(libraries, logger)
	traced, err := c7otel.NewTracingLibraryService(libraries, m.Telemetry.Tracer, m.Telemetry.Meter)
	if err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}
	deps.Libraries = traced

	return kongCtx.Run(deps)
}

// loadConfig merges defaults, the config file and flags/environment, in
// increasing precedence.
func (m *Main) loadConfig(cli *CLI) (context7.Config, error) {
	cfg := context7.DefaultConfig()

	path, required := m.ConfigPath, false
	if cli.Config != "" {
		path, required = cli.Config, true
	}
	if path != "" {
		fileCfg, err := c7yaml.LoadConfig(path)
		switch {
		case err == nil:
			cfg = cfg.Merge(fileCfg)
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return context7.Config{}, err
		}
	}

	cfg = cfg.Merge(cli.overrides())
	if err := cfg.Validate(); err != nil {
		return context7.Config{}, err
	}
	return cfg, nil
}
