package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
	"github.com/lib/pq"
)

// MovieModel reads movie rows used to seed the catalog. The catalog never
// writes back: favorites live only for the session.
type MovieModel struct {
	DB *sql.DB
}

// GetAll returns every row of the movies table ordered by id.
func (m MovieModel) GetAll(ctx context.Context) ([]Movie, error) {
	query := `
		SELECT id, title, year, rating, genres, poster, is_favorite, views,
			description, director, cast_members, duration, country, trailer
		FROM movies
		ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movies := []Movie{}

	for rows.Next() {
		var (
			movie       Movie
			description sql.NullString
			director    sql.NullString
			duration    sql.NullInt32
			country     sql.NullString
			trailer     sql.NullString
			cast        pq.StringArray
		)

		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Year,
			&movie.Rating,
			pq.Array(&movie.Genres),
			&movie.Poster,
			&movie.IsFavorite,
			&movie.Views,
			&description,
			&director,
			&cast,
			&duration,
			&country,
			&trailer,
		)
		if err != nil {
			return nil, err
		}

		movie.Description = nullString(description)
		movie.Director = nullString(director)
		movie.Country = nullString(country)
		movie.Trailer = nullString(trailer)
		if duration.Valid {
			movie.Duration = &duration.Int32
		}
		if cast != nil {
			movie.Cast = []string(cast)
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return movies, nil
}

// ReviewModel reads review rows used to seed the catalog.
type ReviewModel struct {
	DB *sql.DB
}

// GetAll returns every row of the reviews table ordered by id. review_date is
// a DATE column; it is rendered with ReviewDateLayout.
func (m ReviewModel) GetAll(ctx context.Context) ([]Review, error) {
	query := `
		SELECT id, movie_id, author, body, review_date, rating
		FROM reviews
		ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []Review{}

	for rows.Next() {
		var (
			review Review
			date   time.Time
		)

		err := rows.Scan(
			&review.ID,
			&review.MovieID,
			&review.Author,
			&review.Text,
			&date,
			&review.Rating,
		)
		if err != nil {
			return nil, err
		}

		review.Date = date.Format(ReviewDateLayout)

		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// LoadCatalog reads movies and reviews from db and returns a Catalog holding
// them. Every record is validated first; the first invalid one aborts the
// load with an error wrapping ErrInvalidRecord.
func LoadCatalog(ctx context.Context, db *sql.DB) (*Catalog, error) {
	movies, err := MovieModel{DB: db}.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}

	reviews, err := ReviewModel{DB: db}.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	seen := make(map[int64]bool, len(movies))
	for i := range movies {
		v := validator.New()
		ValidateMovie(v, &movies[i])
		v.Check(!seen[movies[i].ID], "id", "must be unique")
		if !v.Valid() {
			return nil, fmt.Errorf("%w: movie %d: %v", ErrInvalidRecord, movies[i].ID, v.Errors)
		}
		seen[movies[i].ID] = true
	}

	seenReviews := make(map[int64]bool, len(reviews))
	for i := range reviews {
		v := validator.New()
		ValidateReview(v, &reviews[i])
		v.Check(!seenReviews[reviews[i].ID], "id", "must be unique")
		if !v.Valid() {
			return nil, fmt.Errorf("%w: review %d: %v", ErrInvalidRecord, reviews[i].ID, v.Errors)
		}
		seenReviews[reviews[i].ID] = true
	}

	return NewCatalog(movies, reviews), nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
