package data

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
)

// Filters holds the listing parameters a client can send with
// "GET /v1/movies".
type Filters struct {
	Genre        string
	Title        string
	Page         int
	PageSize     int
	Sort         string
	SortSafelist []string
}

// sortColumn check the client-provided Sort field matches one of the entries
// in our safelist and if it does, extract the field name from the Sort field
// by stripping the leading hyphen character (if one exists).
func (f Filters) sortColumn() string {
	for _, safeValue := range f.SortSafelist {
		if f.Sort == safeValue {
			return strings.TrimPrefix(f.Sort, "-")
		}
	}
	panic("unsafe sort parameter: " + f.Sort)
}

// sortDescending reports whether the Sort field asks for descending order.
func (f Filters) sortDescending() bool {
	return strings.HasPrefix(f.Sort, "-")
}

func (f Filters) limit() int {
	return f.PageSize
}

func (f Filters) offset() int {
	return (f.Page - 1) * f.PageSize
}

// ValidateFilters validate filters value to conform business rules.
// For each invalid filters value will be added as an error to v with
// corresponding key and appropriate message.
func ValidateFilters(v *validator.Validator, f Filters) {
	v.Check(f.Page > 0, "page", "must be greater than zero")
	v.Check(f.Page <= 10_000_000, "page", "must be a maximum of 10 million")
	v.Check(f.PageSize > 0, "page_size", "must be greater than zero")
	v.Check(f.PageSize <= 100, "page_size", "must be a maximum of 100")
	v.Check(validator.In(f.Sort, f.SortSafelist...), "sort", "invalid sort value")
	v.Check(f.Genre == GenreAll || validator.In(f.Genre, genres...), "genre", "invalid genre value")
}

// Metadata struct for holding the pagination metadata.
type Metadata struct {
	CurrentPage  int `json:"current_page,omitempty"`
	PageSize     int `json:"page_size,omitempty"`
	FirstPage    int `json:"first_page,omitempty"`
	LastPage     int `json:"last_page,omitempty"`
	TotalRecords int `json:"total_records,omitempty"`
}

// calculateMetadata calculates the appropriate pagination metadata
// values given the total number of records, current page, and page size values.
// Note that the last page value is calculated using the math.Ceil() function,
// which rounds up a float to the nearest integer. So, for example, if there were 12
// records in total and a page size of 5, the last page value would be math.Ceil(12/5) = 3
func calculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		return Metadata{}
	}

	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     int(math.Ceil(float64(totalRecords) / float64(pageSize))),
		TotalRecords: totalRecords,
	}
}

// List runs Filter with the genre and title of f, orders the matches by the
// Sort field and returns the requested page. An empty Sort keeps source
// order. Filters must have been validated with ValidateFilters first.
func (c *Catalog) List(f Filters) ([]Movie, Metadata) {
	movies := c.Filter(f.Genre, f.Title)

	if f.Sort != "" {
		column := f.sortColumn()
		slices.SortStableFunc(movies, func(a, b Movie) int {
			var n int
			switch column {
			case "id":
				n = cmp.Compare(a.ID, b.ID)
			case "title":
				n = cmp.Compare(a.Title, b.Title)
			case "year":
				n = cmp.Compare(a.Year, b.Year)
			case "rating":
				n = cmp.Compare(a.Rating, b.Rating)
			case "views":
				n = cmp.Compare(a.Views, b.Views)
			}
			if f.sortDescending() {
				return -n
			}
			return n
		})
	}

	metadata := calculateMetadata(len(movies), f.Page, f.PageSize)

	start := min(f.offset(), len(movies))
	end := min(start+f.limit(), len(movies))
	return movies[start:end], metadata
}
