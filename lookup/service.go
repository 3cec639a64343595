package lookup

import (
	"context"

	"github.com/fwojciec/fehwiki"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of lookups run at once by LookupAll.
const DefaultConcurrency = 4

// Service resolves queries and assembles the pages they name.
type Service struct {
	Resolver    fehwiki.NameResolver
	Assembler   fehwiki.Assembler
	Concurrency int
}

// Result is the outcome of one query.
type Result struct {
	Query    string
	Title    string
	Assembly *fehwiki.Assembly
	Err      error
}

// ProgressEvent reports progress during LookupAll.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Query     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting lookup progress.
type ProgressFunc func(event ProgressEvent)

// Lookup resolves query to a page title and assembles that page.
func (s *Service) Lookup(ctx context.Context, user *fehwiki.User, query string) (*fehwiki.Assembly, error) {
	title, err := s.Resolver.ResolveName(ctx, user, query)
	if err != nil {
		return nil, err
	}
	return s.Assembler.Assemble(ctx, title)
}

// LookupAll runs Lookup for every query concurrently. Results are returned
// in query order; a failed query records its error and does not stop the
// others. The progress callback, if provided, is called from a single
// goroutine.
func (s *Service) LookupAll(ctx context.Context, user *fehwiki.User, queries []string, progress ProgressFunc) []Result {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type indexed struct {
		position int
		result   Result
	}
	resultCh := make(chan indexed, len(queries))
	total := len(queries)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, q := range queries {
			g.Go(func() error {
				resultCh <- indexed{position: i, result: s.lookupOne(gctx, user, q)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]Result, len(queries))
	var completed int
	for r := range resultCh {
		results[r.position] = r.result
		completed++
		if progress == nil {
			continue
		}
		event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, Query: r.result.Query}
		if r.result.Err != nil {
			event.Type = ProgressFailed
			event.Error = r.result.Err
		}
		progress(event)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results
}

func (s *Service) lookupOne(ctx context.Context, user *fehwiki.User, query string) Result {
	result := Result{Query: query}
	title, err := s.Resolver.ResolveName(ctx, user, query)
	if err != nil {
		result.Err = err
		return result
	}
	result.Title = title
	result.Assembly, result.Err = s.Assembler.Assemble(ctx, title)
	return result
}
