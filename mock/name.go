package mock

import (
	"context"

	"github.com/fwojciec/fehwiki"
)

var _ fehwiki.AliasService = (*AliasService)(nil)

// AliasService is a mock implementation of fehwiki.AliasService.
type AliasService struct {
	ResolveAliasFn func(ctx context.Context, alias string) (string, error)
	SetAliasFn     func(ctx context.Context, alias *fehwiki.Alias) error
	DeleteAliasFn  func(ctx context.Context, alias string) error
	FindAliasesFn  func(ctx context.Context, filter fehwiki.AliasFilter) ([]*fehwiki.Alias, error)
}

func (s *AliasService) ResolveAlias(ctx context.Context, alias string) (string, error) {
	return s.ResolveAliasFn(ctx, alias)
}

func (s *AliasService) SetAlias(ctx context.Context, alias *fehwiki.Alias) error {
	return s.SetAliasFn(ctx, alias)
}

func (s *AliasService) DeleteAlias(ctx context.Context, alias string) error {
	return s.DeleteAliasFn(ctx, alias)
}

func (s *AliasService) FindAliases(ctx context.Context, filter fehwiki.AliasFilter) ([]*fehwiki.Alias, error) {
	return s.FindAliasesFn(ctx, filter)
}

var _ fehwiki.FamilyService = (*FamilyService)(nil)

// FamilyService is a mock implementation of fehwiki.FamilyService.
type FamilyService struct {
	FindFamilyFn func(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation) (string, error)
	SetFamilyFn  func(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation, title string) error
}

func (s *FamilyService) FindFamily(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation) (string, error) {
	return s.FindFamilyFn(ctx, user, relation)
}

func (s *FamilyService) SetFamily(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation, title string) error {
	return s.SetFamilyFn(ctx, user, relation, title)
}

var _ fehwiki.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of fehwiki.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]string, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]string, error) {
	return s.SearchFn(ctx, query)
}

var _ fehwiki.NameResolver = (*NameResolver)(nil)

// NameResolver is a mock implementation of fehwiki.NameResolver.
type NameResolver struct {
	ResolveNameFn func(ctx context.Context, user *fehwiki.User, raw string) (string, error)
}

func (r *NameResolver) ResolveName(ctx context.Context, user *fehwiki.User, raw string) (string, error) {
	return r.ResolveNameFn(ctx, user, raw)
}
