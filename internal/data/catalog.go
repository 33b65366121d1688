package data

import (
	"cmp"
	"slices"
	"strings"
	"sync"
)

// GenreAll is the genre selector value that matches every movie.
const GenreAll = "All"

// genres is the vocabulary offered by the genre selector.
var genres = []string{"Боевик", "Драма", "Комедия", "Фантастика", "Триллер", "Мелодрама"}

// Catalog owns the movie and review collections for one session.
//
// Everything is derived on demand from the two slices; the only mutation is
// ToggleFavorite. Returned movies and reviews are copies, so callers can't
// change store state behind its back.
type Catalog struct {
	mu      sync.RWMutex
	movies  []Movie
	reviews []Review
	owner   Owner
}

// NewCatalog returns a Catalog holding copies of movies and reviews, in the
// order given.
func NewCatalog(movies []Movie, reviews []Review) *Catalog {
	c := &Catalog{
		movies:  make([]Movie, len(movies)),
		reviews: slices.Clone(reviews),
	}
	for i := range movies {
		c.movies[i] = movies[i].clone()
	}
	if c.reviews == nil {
		c.reviews = []Review{}
	}
	return c
}

// Movies returns the whole collection in source order.
func (c *Catalog) Movies() []Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.selectMovies(func(Movie) bool { return true })
}

// Get returns the movie with the given id, or ErrRecordNotFound.
func (c *Catalog) Get(id int64) (*Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}
	movie := c.movies[i].clone()
	return &movie, nil
}

// ToggleFavorite flips the favorite flag of the movie with the given id and
// returns the updated record. An unknown id changes nothing and returns
// ErrRecordNotFound.
func (c *Catalog) ToggleFavorite(id int64) (*Movie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}
	c.movies[i].IsFavorite = !c.movies[i].IsFavorite

	movie := c.movies[i].clone()
	return &movie, nil
}

// Filter returns the movies tagged with genre (any genre when genre is
// GenreAll) whose title contains search, ignoring case. An empty search
// matches every title.
func (c *Catalog) Filter(genre, search string) []Movie {
	search = strings.ToLower(search)

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.selectMovies(func(m Movie) bool {
		if genre != GenreAll && !m.HasGenre(genre) {
			return false
		}
		return strings.Contains(strings.ToLower(m.Title), search)
	})
}

// TopByRating returns at most n movies, highest rating first. Equal ratings
// keep their source order.
func (c *Catalog) TopByRating(n int) []Movie {
	return c.top(n, func(a, b Movie) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
}

// TopByViews returns at most n movies, most viewed first. Equal view counts
// keep their source order.
func (c *Catalog) TopByViews(n int) []Movie {
	return c.top(n, byViewsDesc)
}

// WatchHistory returns at most n movies that have been viewed at least once,
// most viewed first.
func (c *Catalog) WatchHistory(n int) []Movie {
	c.mu.RLock()
	watched := c.selectMovies(func(m Movie) bool { return m.Views > 0 })
	c.mu.RUnlock()

	slices.SortStableFunc(watched, byViewsDesc)
	return watched[:clamp(n, len(watched))]
}

// Favorites returns the movies flagged as favorite, in source order.
func (c *Catalog) Favorites() []Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.selectMovies(func(m Movie) bool { return m.IsFavorite })
}

// TotalViews sums the view counters of every movie.
func (c *Catalog) TotalViews() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for i := range c.movies {
		total += c.movies[i].Views
	}
	return total
}

// Reviews returns every review in source order.
func (c *Catalog) Reviews() []Review {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.reviews)
}

// ReviewsFor returns the reviews of a movie in source order. The result is
// empty, never nil, when there are none.
func (c *Catalog) ReviewsFor(movieID int64) []Review {
	c.mu.RLock()
	defer c.mu.RUnlock()

	reviews := []Review{}
	for _, r := range c.reviews {
		if r.MovieID == movieID {
			reviews = append(reviews, r)
		}
	}
	return reviews
}

// ReviewEntry pairs a review with the movie it refers to. Movie is nil when
// the review points at an id the catalog doesn't have.
type ReviewEntry struct {
	Review Review `json:"review"`
	Movie  *Movie `json:"movie,omitempty"`
}

// ReviewFeed returns every review joined with its movie, in review order.
func (c *Catalog) ReviewFeed() []ReviewEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	feed := make([]ReviewEntry, 0, len(c.reviews))
	for _, r := range c.reviews {
		entry := ReviewEntry{Review: r}
		if i := c.indexOf(r.MovieID); i >= 0 {
			movie := c.movies[i].clone()
			entry.Movie = &movie
		}
		feed = append(feed, entry)
	}
	return feed
}

// Owner identifies the user the session belongs to.
type Owner struct {
	Name string `json:"name"`
	// Month the user joined, as "2006-01"
	MemberSince string `json:"member_since"`
}

// SetOwner records who the session belongs to. A catalog without an owner
// reports an anonymous profile.
func (c *Catalog) SetOwner(owner Owner) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.owner = owner
}

// Profile holds what the user's profile shows: identity and counters.
type Profile struct {
	Name        string `json:"name,omitempty"`
	MemberSince string `json:"member_since,omitempty"`
	TotalViews  int64  `json:"total_views"`
	Favorites   int    `json:"favorites"`
	Reviews     int    `json:"reviews"`
}

// Profile returns the owner's identity together with the total view count,
// the number of favorites and the number of reviews.
func (c *Catalog) Profile() Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := Profile{
		Name:        c.owner.Name,
		MemberSince: c.owner.MemberSince,
	}
	for i := range c.movies {
		p.TotalViews += c.movies[i].Views
		if c.movies[i].IsFavorite {
			p.Favorites++
		}
	}
	p.Reviews = len(c.reviews)
	return p
}

// Genres returns the genre selector values, GenreAll first.
func (c *Catalog) Genres() []string {
	return append([]string{GenreAll}, genres...)
}

// top sorts a snapshot of the collection with a stable sort and keeps the
// first n entries.
func (c *Catalog) top(n int, order func(a, b Movie) int) []Movie {
	c.mu.RLock()
	movies := c.selectMovies(func(Movie) bool { return true })
	c.mu.RUnlock()

	slices.SortStableFunc(movies, order)
	return movies[:clamp(n, len(movies))]
}

// selectMovies copies the movies accepted by keep. Callers must hold c.mu.
func (c *Catalog) selectMovies(keep func(Movie) bool) []Movie {
	movies := []Movie{}
	for i := range c.movies {
		if keep(c.movies[i]) {
			movies = append(movies, c.movies[i].clone())
		}
	}
	return movies
}

// indexOf returns the position of the movie with the given id, or -1.
// Callers must hold c.mu.
func (c *Catalog) indexOf(id int64) int {
	return slices.IndexFunc(c.movies, func(m Movie) bool { return m.ID == id })
}

func byViewsDesc(a, b Movie) int {
	return cmp.Compare(b.Views, a.Views)
}

// clamp bounds n to [0, size].
func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}
