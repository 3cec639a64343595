// Package slog provides logging decorators for the wiki services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fehwiki"
)

// Ensure LoggingDocumentFetcher implements fehwiki.DocumentFetcher.
var _ fehwiki.DocumentFetcher = (*LoggingDocumentFetcher)(nil)

// LoggingDocumentFetcher wraps a DocumentFetcher with debug logging.
type LoggingDocumentFetcher struct {
	next   fehwiki.DocumentFetcher
	logger *slog.Logger
}

// NewLoggingDocumentFetcher creates a new LoggingDocumentFetcher.
func NewLoggingDocumentFetcher(next fehwiki.DocumentFetcher, logger *slog.Logger) *LoggingDocumentFetcher {
	return &LoggingDocumentFetcher{next: next, logger: logger}
}

// FetchDocument delegates to the wrapped fetcher and logs the operation.
func (f *LoggingDocumentFetcher) FetchDocument(ctx context.Context, title string) (doc *fehwiki.Document, err error) {
	defer func(begin time.Time) {
		var size, categories int
		if doc != nil {
			size = len(doc.HTML)
			categories = doc.Categories.Len()
		}
		f.logger.Debug("fetch document",
			"title", title,
			"bytes", size,
			"categories", categories,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchDocument(ctx, title)
}
