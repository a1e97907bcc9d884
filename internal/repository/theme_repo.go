// filepath: internal/repository/theme_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/models"
	"moviecatalog/internal/shared"

	"github.com/Masterminds/squirrel"
)

var themeColumns = []string{"id", "name", "description", "color", "created_at"}

func themeCacheKey(id int64) string {
	return fmt.Sprintf("theme_by_id_%d", id)
}

// scanTheme reads one themes row in themeColumns order.
func scanTheme(row interface{ Scan(...interface{}) error }) (models.Theme, error) {
	var theme models.Theme
	var description, color sql.NullString
	var createdAt sqlTime
	if err := row.Scan(&theme.ID, &theme.Name, &description, &color, &createdAt); err != nil {
		return models.Theme{}, err
	}
	theme.Description = description.String
	theme.Color = color.String
	theme.CreatedAt = createdAt.Time
	return theme, nil
}

// ListThemes returns all themes ordered by name.
func (s *Repository) ListThemes() ([]models.Theme, error) {
	query, args, err := s.Builder.Select(themeColumns...).From("themes").OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build theme query: %w", err)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize an empty, non-nil slice to ensure JSON marshals to [] instead of null.
	themes := make([]models.Theme, 0)
	for rows.Next() {
		theme, err := scanTheme(rows)
		if err != nil {
			return nil, err
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return themes, nil
}

// GetTheme retrieves a theme by id, using a cache for performance.
// A missing theme yields shared.ErrNotFound.
func (s *Repository) GetTheme(id int64) (*models.Theme, error) {
	cacheKey := themeCacheKey(id)
	if s.cacheEnabled() {
		if theme, found := s.Cache.Get(cacheKey); found {
			t := theme.(models.Theme)
			return &t, nil
		}
	}

	query, args, err := s.Builder.Select(themeColumns...).From("themes").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build theme query: %w", err)
	}

	theme, err := scanTheme(s.DB.QueryRow(query, args...))
	if err != nil {
		return nil, notFound(err)
	}

	if s.cacheEnabled() {
		logging.Log.Debugf("GetTheme: Setting cache for theme %d ('%s')", theme.ID, theme.Name)
		s.Cache.Set(cacheKey, theme, s.cacheTTL)
	}
	return &theme, nil
}

// InsertTheme creates a new theme. A name that already exists yields shared.ErrDuplicateName
// and leaves the table untouched.
func (s *Repository) InsertTheme(name, description, color string) (*models.Theme, error) {
	query, args, err := s.Builder.Insert("themes").
		Columns("name", "description", "color").
		Values(name, description, color).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build theme insert: %w", err)
	}

	res, err := s.DB.Exec(query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("theme '%s': %w", name, shared.ErrDuplicateName)
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetTheme(id)
}

// SeedThemes inserts the given themes, ignoring names that already exist.
// It returns the number of rows actually inserted.
func (s *Repository) SeedThemes(themes []models.ThemeCreate) (int64, error) {
	if len(themes) == 0 {
		return 0, nil
	}

	insert := s.Builder.Insert("themes").Options("OR IGNORE").Columns("name", "description", "color")
	for _, t := range themes {
		insert = insert.Values(t.Name, t.Description, t.Color)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build seed insert: %w", err)
	}

	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to seed themes: %w", err)
	}
	return res.RowsAffected()
}

// DeleteTheme removes a theme and detaches the movies that referenced it, in one transaction.
// It returns the number of detached movies.
func (s *Repository) DeleteTheme(id int64) (int64, error) {
	tx, err := s.BeginTx()
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	detached, err := tx.ClearThemeInTx(id)
	if err != nil {
		return 0, fmt.Errorf("failed to detach movies from theme: %w", err)
	}

	existed, err := tx.DeleteThemeInTx(id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete theme: %w", err)
	}
	if !existed {
		return 0, shared.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	s.Cache.Delete(themeCacheKey(id))
	return detached, nil
}

// CountThemes returns the number of themes.
func (s *Repository) CountThemes() (int, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM themes").Scan(&n)
	return n, err
}
