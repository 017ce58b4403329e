// Package context7 provides a command-line client for the Context7
// documentation search API. It searches libraries, orders and trims the
// results locally, and fetches documentation bodies by library ID.
//
// This package contains domain types, interfaces and the pure result
// pipeline (sort, limit, format) following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., http/, slog/, otel/, yaml/).
package context7
