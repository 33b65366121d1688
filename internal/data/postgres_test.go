package data

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	movieColumns = []string{
		"id", "title", "year", "rating", "genres", "poster", "is_favorite", "views",
		"description", "director", "cast_members", "duration", "country", "trailer",
	}
	reviewColumns = []string{"id", "movie_id", "author", "body", "review_date", "rating"}

	moviesQuery  = regexp.QuoteMeta("FROM movies")
	reviewsQuery = regexp.QuoteMeta("FROM reviews")
)

func TestLoadCatalog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(moviesQuery).WillReturnRows(
		sqlmock.NewRows(movieColumns).
			AddRow(int64(1), "Космическая одиссея", int64(2024), 8.9, "{Фантастика,Драма}", "🚀", true, int64(5),
				"Эпическое путешествие", "Кристофер Нолан", `{"Мэттью МакКонахи","Энн Хэтэуэй"}`, int64(169), "США", nil).
			AddRow(int64(5), "Смешная история", int64(2024), 7.2, "{Комедия}", "😂", false, int64(1),
				nil, nil, nil, nil, nil, nil),
	)
	mock.ExpectQuery(reviewsQuery).WillReturnRows(
		sqlmock.NewRows(reviewColumns).
			AddRow(int64(1), int64(1), "Алексей К.", "Потрясающая визуализация!", time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC), 9.0).
			AddRow(int64(2), int64(42), "Мария С.", "Лучший боевик года.", time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC), 10.0),
	)

	c, err := LoadCatalog(context.Background(), db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	movie, err := c.Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Фантастика", "Драма"}, movie.Genres)
	assert.Equal(t, []string{"Мэттью МакКонахи", "Энн Хэтэуэй"}, movie.Cast)
	require.NotNil(t, movie.Duration)
	assert.Equal(t, int32(169), *movie.Duration)
	require.NotNil(t, movie.Director)
	assert.Equal(t, "Кристофер Нолан", *movie.Director)
	assert.Nil(t, movie.Trailer)

	bare, err := c.Get(5)
	require.NoError(t, err)
	assert.Nil(t, bare.Description)
	assert.Nil(t, bare.Cast)
	assert.Nil(t, bare.Duration)

	assert.Len(t, c.ReviewsFor(1), 1)

	reviews := c.Reviews()
	require.Len(t, reviews, 2)
	assert.Equal(t, "2024-12-10", reviews[0].Date)
	assert.Equal(t, "2024-12-12", reviews[1].Date)
	assert.Equal(t, int64(6), c.TotalViews())
}

func TestReviewDatesMatchSampleFormat(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// lib/pq hands DATE columns back as midnight in the session time zone.
	moscow := time.FixedZone("MSK", 3*60*60)

	mock.ExpectQuery(moviesQuery).WillReturnRows(sqlmock.NewRows(movieColumns))
	mock.ExpectQuery(reviewsQuery).WillReturnRows(
		sqlmock.NewRows(reviewColumns).
			AddRow(int64(1), int64(1), "Алексей К.", "Потрясающая визуализация!", time.Date(2024, 12, 10, 0, 0, 0, 0, moscow), 9.0),
	)

	c, err := LoadCatalog(context.Background(), db)
	require.NoError(t, err)

	loaded := c.Reviews()
	require.Len(t, loaded, 1)
	assert.Equal(t, SampleReviews()[0].Date, loaded[0].Date)
}

func TestLoadCatalogRejectsInvalidMovie(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(moviesQuery).WillReturnRows(
		sqlmock.NewRows(movieColumns).
			AddRow(int64(1), "Космическая одиссея", int64(2024), 11.5, "{Фантастика}", "🚀", false, int64(5),
				nil, nil, nil, nil, nil, nil),
	)
	mock.ExpectQuery(reviewsQuery).WillReturnRows(sqlmock.NewRows(reviewColumns))

	_, err = LoadCatalog(context.Background(), db)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Contains(t, err.Error(), "rating")
}

func TestLoadCatalogRejectsDuplicateIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(moviesQuery).WillReturnRows(
		sqlmock.NewRows(movieColumns).
			AddRow(int64(1), "A", int64(2020), 5.0, "{Драма}", "a", false, int64(0), nil, nil, nil, nil, nil, nil).
			AddRow(int64(1), "B", int64(2021), 6.0, "{Драма}", "b", false, int64(0), nil, nil, nil, nil, nil, nil),
	)
	mock.ExpectQuery(reviewsQuery).WillReturnRows(sqlmock.NewRows(reviewColumns))

	_, err = LoadCatalog(context.Background(), db)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestLoadCatalogQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(moviesQuery).WillReturnError(boom)

	_, err = LoadCatalog(context.Background(), db)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "load movies")
}
