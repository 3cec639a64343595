package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fehwiki"
)

// Ensure LoggingNameResolver implements fehwiki.NameResolver.
var _ fehwiki.NameResolver = (*LoggingNameResolver)(nil)

// LoggingNameResolver wraps a NameResolver with debug logging.
type LoggingNameResolver struct {
	next   fehwiki.NameResolver
	logger *slog.Logger
}

// NewLoggingNameResolver creates a new LoggingNameResolver.
func NewLoggingNameResolver(next fehwiki.NameResolver, logger *slog.Logger) *LoggingNameResolver {
	return &LoggingNameResolver{next: next, logger: logger}
}

// ResolveName delegates to the wrapped resolver and logs the operation.
func (r *LoggingNameResolver) ResolveName(ctx context.Context, user *fehwiki.User, raw string) (title string, err error) {
	defer func(begin time.Time) {
		var userID string
		if user != nil {
			userID = user.ID
		}
		r.logger.Debug("resolve name",
			"query", raw,
			"user", userID,
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveName(ctx, user, raw)
}
