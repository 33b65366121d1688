package data

import (
	"errors"
)

var (
	// ErrRecordNotFound is returned when looking up (or toggling) a movie id
	// that isn't in the catalog.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidRecord is returned when a seeded movie or review breaks a
	// catalog invariant.
	ErrInvalidRecord = errors.New("invalid record")
)

// Models is a 'container' for the data the API handlers work with.
type Models struct {
	Catalog *Catalog
}

// NewModels returns a Models struct backed by the given catalog.
func NewModels(catalog *Catalog) Models {
	return Models{
		Catalog: catalog,
	}
}
