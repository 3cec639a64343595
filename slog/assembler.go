package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fehwiki"
)

// Ensure LoggingAssembler implements fehwiki.Assembler.
var _ fehwiki.Assembler = (*LoggingAssembler)(nil)

// LoggingAssembler wraps an Assembler with logging.
type LoggingAssembler struct {
	next   fehwiki.Assembler
	logger *slog.Logger
}

// NewLoggingAssembler creates a new LoggingAssembler.
func NewLoggingAssembler(next fehwiki.Assembler, logger *slog.Logger) *LoggingAssembler {
	return &LoggingAssembler{next: next, logger: logger}
}

// Assemble delegates to the wrapped assembler and logs the operation.
func (a *LoggingAssembler) Assemble(ctx context.Context, title string) (assembly *fehwiki.Assembly, err error) {
	defer func(begin time.Time) {
		var resolved string
		var records, referenced int
		if assembly != nil {
			resolved = assembly.Title
			records = len(assembly.Records)
			referenced = len(assembly.Referenced)
		}
		a.logger.Info("assemble",
			"title", title,
			"resolved", resolved,
			"records", records,
			"referenced", referenced,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Assemble(ctx, title)
}
