package main

import (
	"errors"
	"net/http"

	"github.com/hafizmfadli/movie-catalog/internal/data"
	"github.com/hafizmfadli/movie-catalog/internal/validator"
)

const (
	// Defaults for the home page strips.
	defaultTopRated   = 6
	defaultMostViewed = 4
	// Length of the watch history shown on the profile.
	watchHistoryLength = 5
)

// listGenresHandler for the "GET /v1/genres" endpoint.
func (app *application) listGenresHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"genres": app.models.Catalog.Genres()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listMoviesHandler for the "GET /v1/movies" endpoint. Accepts genre, title,
// sort, page and page_size query parameters.
func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	var filters data.Filters

	v := validator.New()

	qs := r.URL.Query()

	filters.Genre = app.readString(qs, "genre", data.GenreAll)
	filters.Title = app.readString(qs, "title", "")
	filters.Page = app.readInt(qs, "page", 1, v)
	filters.PageSize = app.readInt(qs, "page_size", 20, v)
	filters.Sort = app.readString(qs, "sort", "")
	filters.SortSafelist = []string{"", "id", "title", "year", "rating", "views", "-id", "-title", "-year", "-rating", "-views"}

	if data.ValidateFilters(v, filters); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	movies, metadata := app.models.Catalog.List(filters)

	err := app.writeJSON(w, http.StatusOK, envelope{"movies": movies, "metadata": metadata}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showMovieHandler for the "GET /v1/movies/:id" endpoint. The response carries
// the movie's reviews alongside it.
func (app *application) showMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.models.Catalog.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	env := envelope{
		"movie":   movie,
		"reviews": app.models.Catalog.ReviewsFor(id),
	}

	err = app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toggleFavoriteHandler for the "POST /v1/movies/:id/favorite" endpoint.
func (app *application) toggleFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.models.Catalog.ToggleFavorite(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"movie": movie}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listMovieReviewsHandler for the "GET /v1/movies/:id/reviews" endpoint.
// A movie without reviews (or an id no movie has) gets an empty list.
func (app *application) listMovieReviewsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"reviews": app.models.Catalog.ReviewsFor(id)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// topRatedHandler for the "GET /v1/top/rating" endpoint.
func (app *application) topRatedHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := app.readLimit(w, r, defaultTopRated)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, envelope{"movies": app.models.Catalog.TopByRating(limit)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// mostViewedHandler for the "GET /v1/top/views" endpoint.
func (app *application) mostViewedHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := app.readLimit(w, r, defaultMostViewed)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, envelope{"movies": app.models.Catalog.TopByViews(limit)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// readLimit reads the "limit" query parameter. On invalid input it writes the
// 422 response itself and returns false.
func (app *application) readLimit(w http.ResponseWriter, r *http.Request, defaultValue int) (int, bool) {
	v := validator.New()

	limit := app.readInt(r.URL.Query(), "limit", defaultValue, v)
	v.Check(limit > 0, "limit", "must be greater than zero")
	v.Check(limit <= 100, "limit", "must be a maximum of 100")

	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return 0, false
	}
	return limit, true
}

// listFavoritesHandler for the "GET /v1/favorites" endpoint.
func (app *application) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"movies": app.models.Catalog.Favorites()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listReviewsHandler for the "GET /v1/reviews" endpoint.
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"reviews": app.models.Catalog.ReviewFeed()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showProfileHandler for the "GET /v1/profile" endpoint.
func (app *application) showProfileHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"profile": app.models.Catalog.Profile(),
		"history": app.models.Catalog.WatchHistory(watchHistoryLength),
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
