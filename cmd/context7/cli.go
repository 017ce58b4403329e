package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/context7"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Libraries context7.LibraryService
}

// logger returns the configured logger, or one that discards everything.
func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config       string        `name:"config" type:"path" env:"CONTEXT7_CONFIG" help:"Config file (default: ~/.config/context7/config.yaml)"`
	BaseURL      string        `name:"base-url" env:"CONTEXT7_BASE_URL" help:"API base URL"`
	APIKey       string        `name:"api-key" env:"CONTEXT7_API_KEY" help:"API key sent as a bearer token"`
	Timeout      time.Duration `name:"timeout" env:"CONTEXT7_TIMEOUT" help:"Per-request timeout (default: 30s)"`
	RateLimit    float64       `name:"rate-limit" env:"CONTEXT7_RATE_LIMIT" help:"Maximum requests per second (0 = unlimited)"`
	LogLevel     string        `name:"log-level" env:"CONTEXT7_LOG_LEVEL" help:"Log level: debug, info, warn, error (default: warn)"`
	OTLPEndpoint string        `name:"otlp-endpoint" env:"CONTEXT7_OTLP_ENDPOINT" help:"OTLP/HTTP collector host:port for traces and metrics"`

	Search  SearchCmd  `cmd:"" help:"Search libraries"`
	GetDocs GetDocsCmd `cmd:"" name:"get-docs" help:"Print documentation for a library ID"`
	Lucky   LuckyCmd   `cmd:"" help:"Print documentation for the most starred match"`
	Schema  SchemaCmd  `cmd:"" help:"Print the JSON Schema of search output"`
}

// overrides returns the settings given as flags or environment variables.
func (c *CLI) overrides() context7.Config {
	return context7.Config{
		BaseURL:           c.BaseURL,
		APIKey:            c.APIKey,
		Timeout:           c.Timeout,
		RequestsPerSecond: c.RateLimit,
		LogLevel:          c.LogLevel,
		OTLPEndpoint:      c.OTLPEndpoint,
	}
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string             `arg:"" help:"Query string to search for"`
	SortBy context7.SortField `name:"sort-by" default:"stars" help:"Field to sort by, descending: stars, totalPages, totalSnippets, totalTokens, trustScore"`
	Limit  *int               `help:"Limit the number of results returned"`
	IDOnly bool               `name:"id-only" help:"Output only the ID field (one per line)"`
}

// GetDocsCmd is the "get-docs" subcommand.
type GetDocsCmd struct {
	ID string `arg:"" help:"Library ID (e.g., \"/fastapi/fastapi\")"`
}

// LuckyCmd is the "lucky" subcommand.
type LuckyCmd struct {
	Query string `arg:"" help:"Query string to search for"`
}

// SchemaCmd is the "schema" subcommand.
type SchemaCmd struct{}
