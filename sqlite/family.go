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
var _ fehwiki.FamilyService = (*FamilyService)(nil)

// FamilyService implements fehwiki.FamilyService using SQLite.
//
// Bindings are keyed by user ID. Older bindings keyed by user name are
// moved to the ID the first time they are read.
type FamilyService struct {
	db *DB
}

// NewFamilyService creates a new FamilyService.
func NewFamilyService(db *DB) *FamilyService {
	return &FamilyService{db: db}
}

// FindFamily returns the title bound to the user for the relation.
func (s *FamilyService) FindFamily(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation) (string, error) {
	if user == nil || user.ID == "" {
		return "", fehwiki.Errorf(fehwiki.EINVALID, "user required")
	}

	title, err := s.findByKey(ctx, user.ID, relation)
	if fehwiki.ErrorCode(err) != fehwiki.ENOTFOUND || user.Name == "" {
		return title, err
	}

	title, err = s.findByKey(ctx, user.Name, relation)
	if err != nil {
		return "", err
	}
	if err := s.SetFamily(ctx, user, relation, title); err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM families WHERE user_key = ? AND relation = ?
	`, user.Name, string(relation)); err != nil {
		return "", err
	}
	return title, nil
}

func (s *FamilyService) findByKey(ctx context.Context, key string, relation fehwiki.Relation) (string, error) {
	var title string
	err := s.db.QueryRowContext(ctx, `
		SELECT title FROM families WHERE user_key = ? AND relation = ?
	`, key, string(relation)).Scan(&title)
	if err == sql.ErrNoRows {
		return "", fehwiki.Errorf(fehwiki.ENOTFOUND, "no %s set", relation)
	}
	if err != nil {
		return "", err
	}
	return title, nil
}

// SetFamily binds title to the user for the relation, replacing any
// existing binding.
func (s *FamilyService) SetFamily(ctx context.Context, user *fehwiki.User, relation fehwiki.Relation, title string) error {
	if user == nil || user.ID == "" {
		return fehwiki.Errorf(fehwiki.EINVALID, "user required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return fehwiki.Errorf(fehwiki.EINVALID, "title required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO families (id, user_key, relation, title, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_key, relation) DO UPDATE SET title = excluded.title, updated_at = excluded.updated_at
	`, uuid.New().String(), user.ID, string(relation), title, time.Now().UTC().Format(time.RFC3339))
	return err
}
