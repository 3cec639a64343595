package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/fehwiki"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ fehwiki.AliasService = (*AliasService)(nil)

// AliasService implements fehwiki.AliasService using SQLite.
type AliasService struct {
	db *DB
}

// NewAliasService creates a new AliasService.
func NewAliasService(db *DB) *AliasService {
	return &AliasService{db: db}
}

// ResolveAlias returns the title stored for alias, ignoring case.
func (s *AliasService) ResolveAlias(ctx context.Context, alias string) (string, error) {
	var title string
	err := s.db.QueryRowContext(ctx, `
		SELECT title FROM aliases WHERE alias = ?
	`, strings.TrimSpace(alias)).Scan(&title)
	if err == sql.ErrNoRows {
		return "", fehwiki.Errorf(fehwiki.ENOTFOUND, "alias %q not found", alias)
	}
	if err != nil {
		return "", err
	}
	return title, nil
}

// SetAlias creates the alias, or points an existing one at a new title.
func (s *AliasService) SetAlias(ctx context.Context, alias *fehwiki.Alias) error {
	if err := alias.Validate(); err != nil {
		return err
	}

	alias.Alias = strings.TrimSpace(alias.Alias)
	alias.Title = strings.TrimSpace(alias.Title)
	alias.ID = uuid.New().String()
	alias.CreatedAt = time.Now().UTC()

	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO aliases (id, alias, title, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (alias) DO UPDATE SET title = excluded.title
		RETURNING id, created_at
	`, alias.ID, alias.Alias, alias.Title, alias.CreatedAt.Format(time.RFC3339)).Scan(&alias.ID, &createdAt)
	if err != nil {
		return err
	}

	alias.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	return err
}

// DeleteAlias permanently removes an alias.
func (s *AliasService) DeleteAlias(ctx context.Context, alias string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM aliases WHERE alias = ?", strings.TrimSpace(alias))
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fehwiki.Errorf(fehwiki.ENOTFOUND, "alias %q not found", alias)
	}
	return nil
}

// FindAliases retrieves aliases matching the filter, ordered by alias.
func (s *AliasService) FindAliases(ctx context.Context, filter fehwiki.AliasFilter) ([]*fehwiki.Alias, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, alias, title, created_at FROM aliases WHERE 1=1")

	if filter.Title != nil {
		query.WriteString(" AND title = ? COLLATE NOCASE")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY alias COLLATE NOCASE ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aliases []*fehwiki.Alias
	for rows.Next() {
		var a fehwiki.Alias
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Alias, &a.Title, &createdAt); err != nil {
			return nil, err
		}
		if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		aliases = append(aliases, &a)
	}

	return aliases, rows.Err()
}
