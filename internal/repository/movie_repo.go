// filepath: internal/repository/movie_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/models"
	"moviecatalog/internal/shared"

	"github.com/Masterminds/squirrel"
)

// MovieOrder selects the ordering of a movie listing.
type MovieOrder int

const (
	// OrderByTitle sorts alphabetically by title.
	OrderByTitle MovieOrder = iota
	// OrderByNewest sorts by creation time, newest first.
	OrderByNewest
)

var movieColumns = []string{
	"m.id", "m.title", "m.year", "m.genre", "m.director", "m.description",
	"m.file_path", "m.poster_path", "m.source_drive", "m.rating", "m.duration",
	"m.theme_id", "m.created_at", "m.watched",
}

// movieScanTarget holds the nullable scan destinations of a movies row.
type movieScanTarget struct {
	id                                                         int64
	title                                                      string
	year, duration, themeID                                    sql.NullInt64
	genre, director, description, filePath, posterPath, source sql.NullString
	rating                                                     sql.NullFloat64
	createdAt                                                  sqlTime
	watched                                                    sql.NullBool
}

func (t *movieScanTarget) dest() []interface{} {
	return []interface{}{
		&t.id, &t.title, &t.year, &t.genre, &t.director, &t.description,
		&t.filePath, &t.posterPath, &t.source, &t.rating, &t.duration,
		&t.themeID, &t.createdAt, &t.watched,
	}
}

func (t *movieScanTarget) movie() models.Movie {
	return models.Movie{
		ID:          t.id,
		Title:       t.title,
		Year:        intPtr(t.year),
		Genre:       t.genre.String,
		Director:    t.director.String,
		Description: t.description.String,
		FilePath:    t.filePath.String,
		PosterPath:  t.posterPath.String,
		SourceDrive: t.source.String,
		Rating:      floatPtr(t.rating),
		Duration:    intPtr(t.duration),
		ThemeID:     int64Ptr(t.themeID),
		CreatedAt:   t.createdAt.Time,
		Watched:     t.watched.Valid && t.watched.Bool,
	}
}

func (s *Repository) selectMovies() squirrel.SelectBuilder {
	return s.Builder.Select(movieColumns...).From("movies m")
}

// ListMovies returns movies in the requested order. A limit <= 0 means no limit.
func (s *Repository) ListMovies(order MovieOrder, limit int) ([]models.Movie, error) {
	q := s.selectMovies()
	switch order {
	case OrderByNewest:
		q = q.OrderBy("m.created_at DESC", "m.id DESC")
	default:
		q = q.OrderBy("m.title", "m.id")
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movie query: %w", err)
	}
	logging.Log.Debugf("Generated SQL for ListMovies: %s", query)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		logging.Log.Errorf("Error executing ListMovies query: %v", err)
		return nil, err
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		var target movieScanTarget
		if err := rows.Scan(target.dest()...); err != nil {
			logging.Log.Errorf("Error scanning movie row: %v", err)
			return nil, err
		}
		movies = append(movies, target.movie())
	}
	if err := rows.Err(); err != nil {
		logging.Log.Errorf("Error during rows iteration: %v", err)
		return nil, err
	}
	return movies, nil
}

// ListMoviesWithTheme returns all movies, newest first, joined with their theme's name and color.
func (s *Repository) ListMoviesWithTheme() ([]models.MovieWithTheme, error) {
	query, args, err := s.selectMovies().
		Columns("t.name", "t.color").
		LeftJoin("themes t ON t.id = m.theme_id").
		OrderBy("m.created_at DESC", "m.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movie query: %w", err)
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := make([]models.MovieWithTheme, 0)
	for rows.Next() {
		var target movieScanTarget
		var themeName, themeColor sql.NullString
		dest := append(target.dest(), &themeName, &themeColor)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		movies = append(movies, models.MovieWithTheme{
			Movie:      target.movie(),
			ThemeName:  stringPtr(themeName),
			ThemeColor: stringPtr(themeColor),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovie retrieves a single movie. A missing movie yields shared.ErrNotFound.
func (s *Repository) GetMovie(id int64) (*models.Movie, error) {
	query, args, err := s.selectMovies().Where(squirrel.Eq{"m.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movie query: %w", err)
	}

	var target movieScanTarget
	if err := s.DB.QueryRow(query, args...).Scan(target.dest()...); err != nil {
		return nil, notFound(err)
	}
	movie := target.movie()
	return &movie, nil
}

// InsertMovie stores a new movie from the minimal creation field set and returns its id.
func (s *Repository) InsertMovie(m models.MovieCreate) (int64, error) {
	query, args, err := s.Builder.Insert("movies").
		Columns("title", "year", "genre", "director", "description", "rating", "duration").
		Values(m.Title, nullInt(m.Year), nullString(m.Genre), nullString(m.Director),
			nullString(m.Description), nullFloat(m.Rating), nullInt(m.Duration)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build movie insert: %w", err)
	}

	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateMovie overwrites every editable column of a movie. Missing movies yield shared.ErrNotFound.
func (s *Repository) UpdateMovie(id int64, m models.MovieUpdate) error {
	query, args, err := s.Builder.Update("movies").
		SetMap(map[string]interface{}{
			"title":        m.Title,
			"year":         nullInt(m.Year),
			"genre":        nullString(m.Genre),
			"director":     nullString(m.Director),
			"description":  nullString(m.Description),
			"file_path":    nullString(m.FilePath),
			"poster_path":  nullString(m.PosterPath),
			"source_drive": nullString(m.SourceDrive),
			"rating":       nullFloat(m.Rating),
			"duration":     nullInt(m.Duration),
			"theme_id":     nullInt64(m.ThemeID),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build movie update: %w", err)
	}

	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteMovie removes a movie. Deleting a missing id is not an error.
func (s *Repository) DeleteMovie(id int64) error {
	query, args, err := s.Builder.Delete("movies").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build movie delete: %w", err)
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// GetWatched returns the watched flag of a movie. A missing movie yields shared.ErrNotFound.
func (s *Repository) GetWatched(id int64) (bool, error) {
	var watched sql.NullBool
	if err := s.DB.QueryRow("SELECT watched FROM movies WHERE id = ?", id).Scan(&watched); err != nil {
		return false, notFound(err)
	}
	return watched.Valid && watched.Bool, nil
}

// SetWatched stores the watched flag of a movie.
func (s *Repository) SetWatched(id int64, watched bool) error {
	query, args, err := s.Builder.Update("movies").Set("watched", watched).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build watched update: %w", err)
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// CountMovies returns the number of movies.
func (s *Repository) CountMovies() (int, error) {
	var n int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM movies").Scan(&n)
	return n, err
}
