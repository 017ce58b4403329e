// Package slog provides logging decorators for context7 services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/context7"
)

// Ensure LoggingLibraryService implements context7.LibraryService.
var _ context7.LibraryService = (*LoggingLibraryService)(nil)

// LoggingLibraryService wraps a LibraryService with request logging.
type LoggingLibraryService struct {
	next   context7.LibraryService
	logger *slog.Logger
}

// NewLoggingLibraryService creates a new LoggingLibraryService.
func NewLoggingLibraryService(next context7.LibraryService, logger *slog.Logger) *LoggingLibraryService {
	return &LoggingLibraryService{next: next, logger: logger}
}

// Search delegates to the wrapped service and logs the operation.
func (s *LoggingLibraryService) Search(ctx context.Context, query string) (results []context7.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}

// GetDocs delegates to the wrapped service and logs the operation.
func (s *LoggingLibraryService) GetDocs(ctx context.Context, id string) (docs string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("get docs",
			"id", id,
			"bytes", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetDocs(ctx, id)
}

// NewLogger returns a text logger writing to w at the named level
// ("debug", "info", "warn" or "error"). Unknown names mean "warn".
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
