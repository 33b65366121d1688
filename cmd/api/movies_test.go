package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hafizmfadli/movie-catalog/internal/data"
	"github.com/hafizmfadli/movie-catalog/internal/jsonlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	var cfg config
	cfg.env = "testing"

	app := newApplication(cfg, jsonlog.New(io.Discard, jsonlog.LevelOff), data.NewSampleCatalog())
	t.Cleanup(app.stopBackground)

	return app
}

func do(t *testing.T, h http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, target, nil))

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return rr, body
}

func movieIDs(t *testing.T, raw json.RawMessage) []int64 {
	t.Helper()

	var movies []data.Movie
	require.NoError(t, json.Unmarshal(raw, &movies))

	ids := []int64{}
	for _, m := range movies {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestHealthcheck(t *testing.T) {
	app := newTestApplication(t)

	rr, body := do(t, app.routes(), http.MethodGet, "/v1/healthcheck")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `"available"`, string(body["status"]))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestListMovies(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr, body := do(t, h, http.MethodGet, "/v1/movies")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, movieIDs(t, body["movies"]))

	rr, body = do(t, h, http.MethodGet, "/v1/movies?genre="+url.QueryEscape("Комедия"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{5}, movieIDs(t, body["movies"]))

	rr, body = do(t, h, http.MethodGet, "/v1/movies?title="+url.QueryEscape("ОХОТ")+"&sort=-rating")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []int64{8}, movieIDs(t, body["movies"]))

	var metadata data.Metadata
	rr, body = do(t, h, http.MethodGet, "/v1/movies?page=2&page_size=3")
	require.NoError(t, json.Unmarshal(body["metadata"], &metadata))
	assert.Equal(t, []int64{4, 5, 6}, movieIDs(t, body["movies"]))
	assert.Equal(t, data.Metadata{CurrentPage: 2, PageSize: 3, FirstPage: 1, LastPage: 3, TotalRecords: 8}, metadata)
}

func TestListMoviesRejectsBadFilters(t *testing.T) {
	app := newTestApplication(t)

	rr, body := do(t, app.routes(), http.MethodGet, "/v1/movies?sort=poster&page=x&genre=nope")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var errs map[string]string
	require.NoError(t, json.Unmarshal(body["error"], &errs))
	assert.Contains(t, errs, "sort")
	assert.Contains(t, errs, "page")
	assert.Contains(t, errs, "genre")
}

func TestShowMovie(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr, body := do(t, h, http.MethodGet, "/v1/movies/1")
	assert.Equal(t, http.StatusOK, rr.Code)

	var movie data.Movie
	require.NoError(t, json.Unmarshal(body["movie"], &movie))
	assert.Equal(t, "Космическая одиссея", movie.Title)

	var reviews []data.Review
	require.NoError(t, json.Unmarshal(body["reviews"], &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, int64(1), reviews[0].MovieID)

	rr, _ = do(t, h, http.MethodGet, "/v1/movies/99")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = do(t, h, http.MethodGet, "/v1/movies/abc")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestToggleFavorite(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	rr, body := do(t, h, http.MethodPost, "/v1/movies/2/favorite")
	assert.Equal(t, http.StatusOK, rr.Code)

	var movie data.Movie
	require.NoError(t, json.Unmarshal(body["movie"], &movie))
	assert.True(t, movie.IsFavorite)

	_, body = do(t, h, http.MethodGet, "/v1/favorites")
	assert.Equal(t, []int64{1, 2, 3, 6}, movieIDs(t, body["movies"]))

	rr, _ = do(t, h, http.MethodPost, "/v1/movies/2/favorite")
	assert.Equal(t, http.StatusOK, rr.Code)

	_, body = do(t, h, http.MethodGet, "/v1/favorites")
	assert.Equal(t, []int64{1, 3, 6}, movieIDs(t, body["movies"]))

	rr, _ = do(t, h, http.MethodPost, "/v1/movies/77/favorite")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, _ = do(t, h, http.MethodGet, "/v1/movies/2/favorite")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestMovieReviews(t *testing.T) {
	app := newTestApplication(t)

	rr, body := do(t, app.routes(), http.MethodGet, "/v1/movies/2/reviews")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, string(body["reviews"]))
}

func TestTopLists(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	_, body := do(t, h, http.MethodGet, "/v1/top/rating")
	assert.Equal(t, []int64{3, 1, 7, 2, 8, 6}, movieIDs(t, body["movies"]))

	_, body = do(t, h, http.MethodGet, "/v1/top/views")
	assert.Equal(t, []int64{3, 7, 1, 6}, movieIDs(t, body["movies"]))

	_, body = do(t, h, http.MethodGet, "/v1/top/rating?limit=1")
	assert.Equal(t, []int64{3}, movieIDs(t, body["movies"]))

	rr, _ := do(t, h, http.MethodGet, "/v1/top/views?limit=0")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestReviewFeedAndProfile(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	_, body := do(t, h, http.MethodGet, "/v1/reviews")
	var feed []data.ReviewEntry
	require.NoError(t, json.Unmarshal(body["reviews"], &feed))
	require.Len(t, feed, 3)
	require.NotNil(t, feed[1].Movie)
	assert.Equal(t, int64(3), feed[1].Movie.ID)

	_, body = do(t, h, http.MethodGet, "/v1/profile")
	var profile data.Profile
	require.NoError(t, json.Unmarshal(body["profile"], &profile))
	assert.Equal(t, data.Profile{
		Name:        "Алексей Кинолюб",
		MemberSince: "2024-01",
		TotalViews:  30,
		Favorites:   3,
		Reviews:     3,
	}, profile)
	assert.Equal(t, []int64{3, 7, 1, 6, 2}, movieIDs(t, body["history"]))
}

func TestGenresAndNotFound(t *testing.T) {
	app := newTestApplication(t)
	h := app.routes()

	_, body := do(t, h, http.MethodGet, "/v1/genres")
	var genres []string
	require.NoError(t, json.Unmarshal(body["genres"], &genres))
	assert.Equal(t, data.GenreAll, genres[0])
	assert.Len(t, genres, 7)

	rr, _ := do(t, h, http.MethodGet, "/v1/nothing")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
