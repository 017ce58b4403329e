// Package otel provides OpenTelemetry tracing and metrics for context7
// services.
package otel

import (
	"context"
	"time"

	"github.com/fwojciec/context7"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Ensure TracingLibraryService implements context7.LibraryService.
var _ context7.LibraryService = (*TracingLibraryService)(nil)

// Metric names recorded by TracingLibraryService.
const (
	RequestsMetric = "context7_client_requests_total"
	DurationMetric = "context7_client_request_duration_seconds"
)

// TracingLibraryService wraps a LibraryService with a span, a request
// counter and a duration histogram per call.
type TracingLibraryService struct {
	next     context7.LibraryService
	tracer   trace.Tracer
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewTracingLibraryService creates a new TracingLibraryService.
func NewTracingLibraryService(next context7.LibraryService, tracer trace.Tracer, meter metric.Meter) (*TracingLibraryService, error) {
	requests, err := meter.Int64Counter(RequestsMetric,
		metric.WithDescription("Total Context7 API calls"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(DurationMetric,
		metric.WithDescription("Context7 API call duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &TracingLibraryService{
		next:     next,
		tracer:   tracer,
		requests: requests,
		duration: duration,
	}, nil
}

// Search delegates to the wrapped service inside a "context7.search" span.
func (s *TracingLibraryService) Search(ctx context.Context, query string) ([]context7.SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "context7.search",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("context7.query", query)),
	)
	defer span.End()

	begin := time.Now()
	results, err := s.next.Search(ctx, query)
	s.record(ctx, span, "search", begin, err)
	if err == nil {
		span.SetAttributes(attribute.Int("context7.result_count", len(results)))
	}
	return results, err
}

// GetDocs delegates to the wrapped service inside a "context7.get_docs" span.
func (s *TracingLibraryService) GetDocs(ctx context.Context, id string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "context7.get_docs",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("context7.library_id", id)),
	)
	defer span.End()

	begin := time.Now()
	docs, err := s.next.GetDocs(ctx, id)
	s.record(ctx, span, "get_docs", begin, err)
	if err == nil {
		span.SetAttributes(attribute.Int("context7.bytes", len(docs)))
	}
	return docs, err
}

func (s *TracingLibraryService) record(ctx context.Context, span trace.Span, op string, begin time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	)
	s.requests.Add(ctx, 1, attrs)
	s.duration.Record(ctx, time.Since(begin).Seconds(), attrs)
}
