package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fehwiki"
)

// Ensure LoggingRosterSource implements fehwiki.RosterSource.
var _ fehwiki.RosterSource = (*LoggingRosterSource)(nil)

// LoggingRosterSource wraps a RosterSource with logging.
type LoggingRosterSource struct {
	next   fehwiki.RosterSource
	logger *slog.Logger
}

// NewLoggingRosterSource creates a new LoggingRosterSource.
func NewLoggingRosterSource(next fehwiki.RosterSource, logger *slog.Logger) *LoggingRosterSource {
	return &LoggingRosterSource{next: next, logger: logger}
}

// FetchRoster delegates to the wrapped source and logs the operation.
func (s *LoggingRosterSource) FetchRoster(ctx context.Context) (roster fehwiki.Roster, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch roster",
			"heroes", len(roster),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchRoster(ctx)
}
