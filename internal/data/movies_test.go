package data

import (
	"testing"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateMovieYear(t *testing.T) {
	movie := SampleMovies()[0]

	movie.Year = 1888
	v := validator.New()
	ValidateMovie(v, &movie)
	assert.True(t, v.Valid(), v.Errors)

	movie.Year = 1887
	v = validator.New()
	ValidateMovie(v, &movie)
	assert.Equal(t, "must be 1888 or later", v.Errors["year"])
}

func TestSampleDataIsValid(t *testing.T) {
	for _, m := range SampleMovies() {
		v := validator.New()
		ValidateMovie(v, &m)
		assert.True(t, v.Valid(), "movie %d: %v", m.ID, v.Errors)
	}

	for _, r := range SampleReviews() {
		v := validator.New()
		ValidateReview(v, &r)
		assert.True(t, v.Valid(), "review %d: %v", r.ID, v.Errors)
	}
}
