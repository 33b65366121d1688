package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	router.HandlerFunc(http.MethodGet, "/v1/genres", app.listGenresHandler)

	router.HandlerFunc(http.MethodGet, "/v1/movies", app.listMoviesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/movies/:id", app.showMovieHandler)
	router.HandlerFunc(http.MethodPost, "/v1/movies/:id/favorite", app.toggleFavoriteHandler)
	router.HandlerFunc(http.MethodGet, "/v1/movies/:id/reviews", app.listMovieReviewsHandler)

	router.HandlerFunc(http.MethodGet, "/v1/top/rating", app.topRatedHandler)
	router.HandlerFunc(http.MethodGet, "/v1/top/views", app.mostViewedHandler)

	router.HandlerFunc(http.MethodGet, "/v1/favorites", app.listFavoritesHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reviews", app.listReviewsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/profile", app.showProfileHandler)

	return app.recoverPanic(app.requestID(app.logRequest(app.rateLimit(router))))
}
