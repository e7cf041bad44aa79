// Package slog provides logging decorators for corpusq services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalczak/corpusq"
)

// Ensure LoggingQueryService implements corpusq.QueryService.
var _ corpusq.QueryService = (*LoggingQueryService)(nil)

// LoggingQueryService wraps a QueryService with timing logs per query.
type LoggingQueryService struct {
	next   corpusq.QueryService
	logger *slog.Logger
}

// NewLoggingQueryService creates a new LoggingQueryService.
func NewLoggingQueryService(next corpusq.QueryService, logger *slog.Logger) *LoggingQueryService {
	return &LoggingQueryService{next: next, logger: logger}
}

// Query delegates to the wrapped service and logs the outcome.
func (s *LoggingQueryService) Query(ctx context.Context, q corpusq.Query) ([]*corpusq.Section, error) {
	begin := time.Now()
	results, err := s.next.Query(ctx, q)

	category := "(none)"
	if q.Category != nil {
		category = *q.Category
	}

	if err != nil {
		s.logger.Error("query failed",
			"keywords", q.Keywords,
			"category", category,
			"error", corpusq.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	s.logger.Info("query",
		"keywords", q.Keywords,
		"category", category,
		"matches", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}

// Stats delegates to the wrapped service.
func (s *LoggingQueryService) Stats() corpusq.IndexStats {
	return s.next.Stats()
}
