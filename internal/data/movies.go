package data

import (
	"github.com/hafizmfadli/movie-catalog/internal/validator"
)

// Movie is a single catalog entry. Optional descriptive fields are pointers
// (or a nil slice for Cast) so that "absent" is distinguishable from a zero
// value; absent fields are omitted from JSON output.
type Movie struct {
	// Unique ID, never reassigned
	ID int64 `json:"id"`
	// Movie title
	Title string `json:"title"`
	// Movie release year
	Year int32 `json:"year"`
	// Score in the range [0, 10]
	Rating float64 `json:"rating"`
	// Ordered genre tags (never empty)
	Genres []string `json:"genres"`
	// Opaque display token, e.g. a glyph or an image reference
	Poster string `json:"poster"`
	// Favorite flag, the only field that changes during a session
	IsFavorite bool `json:"is_favorite"`
	// Non-negative view counter
	Views int64 `json:"views"`

	Description *string  `json:"description,omitempty"`
	Director    *string  `json:"director,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	// Runtime in minutes
	Duration *int32  `json:"duration,omitempty"`
	Country  *string `json:"country,omitempty"`
	Trailer  *string `json:"trailer,omitempty"`
}

// HasGenre reports whether genre is one of the movie's tags.
func (m Movie) HasGenre(genre string) bool {
	return validator.In(genre, m.Genres...)
}

// clone returns a copy of m that shares no slices with the original.
func (m Movie) clone() Movie {
	c := m
	c.Genres = append([]string(nil), m.Genres...)
	if m.Cast != nil {
		c.Cast = append([]string(nil), m.Cast...)
	}
	return c
}

// ValidateMovie checks the invariants a movie must hold before it is allowed
// into the catalog.
func ValidateMovie(v *validator.Validator, movie *Movie) {
	v.Check(movie.ID > 0, "id", "must be a positive integer")

	v.Check(movie.Title != "", "title", "must be provided")
	v.Check(len(movie.Title) <= 500, "title", "must not be more than 500 bytes long")

	v.Check(movie.Year >= 1888, "year", "must be 1888 or later")

	v.Check(movie.Rating >= 0, "rating", "must not be negative")
	v.Check(movie.Rating <= 10, "rating", "must not be greater than 10")

	v.Check(movie.Genres != nil, "genres", "must be provided")
	v.Check(len(movie.Genres) >= 1, "genres", "must contain at least 1 genre")
	v.Check(validator.Unique(movie.Genres), "genres", "must not contain duplicate values")

	v.Check(movie.Views >= 0, "views", "must not be negative")

	if movie.Duration != nil {
		v.Check(*movie.Duration > 0, "duration", "must be a positive integer")
	}
}

// ReviewDateLayout is the format of Review.Date.
const ReviewDateLayout = "2006-01-02"

// Review is a user comment tied to a movie by MovieID. The reference is not
// enforced: the movie may not exist.
type Review struct {
	ID      int64  `json:"id"`
	MovieID int64  `json:"movie_id"`
	Author  string `json:"author"`
	Text    string `json:"text"`
	// Calendar day, formatted with ReviewDateLayout
	Date string `json:"date"`
	// Reviewer's own score. Independent of Movie.Rating.
	Rating float64 `json:"rating"`
}

// ValidateReview checks a review before it is allowed into the catalog. The
// movie it points at is not checked.
func ValidateReview(v *validator.Validator, review *Review) {
	v.Check(review.ID > 0, "id", "must be a positive integer")
	v.Check(review.Author != "", "author", "must be provided")
	v.Check(review.Rating >= 0, "rating", "must not be negative")
	v.Check(review.Rating <= 10, "rating", "must not be greater than 10")
}
