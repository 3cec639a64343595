package mock

import (
	"context"

	"github.com/fwojciec/fehwiki"
)

var _ fehwiki.DocumentFetcher = (*DocumentFetcher)(nil)

// DocumentFetcher is a mock implementation of fehwiki.DocumentFetcher.
type DocumentFetcher struct {
	FetchDocumentFn func(ctx context.Context, title string) (*fehwiki.Document, error)
}

func (f *DocumentFetcher) FetchDocument(ctx context.Context, title string) (*fehwiki.Document, error) {
	return f.FetchDocumentFn(ctx, title)
}

var _ fehwiki.CategoryLister = (*CategoryLister)(nil)

// CategoryLister is a mock implementation of fehwiki.CategoryLister.
type CategoryLister struct {
	ListCategoryMembersFn func(ctx context.Context, category, continuation string) ([]string, string, error)
}

func (l *CategoryLister) ListCategoryMembers(ctx context.Context, category, continuation string) ([]string, string, error) {
	return l.ListCategoryMembersFn(ctx, category, continuation)
}

var _ fehwiki.IconFinder = (*IconFinder)(nil)

// IconFinder is a mock implementation of fehwiki.IconFinder.
type IconFinder struct {
	FindIconFn func(ctx context.Context, kind fehwiki.IconKind, name string) (string, error)
}

func (f *IconFinder) FindIcon(ctx context.Context, kind fehwiki.IconKind, name string) (string, error) {
	return f.FindIconFn(ctx, kind, name)
}
