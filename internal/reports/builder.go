// Package reports composes a single book's record with global aggregate
// statistics, computed fresh on every request.
package reports

import (
	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/entities"
)

// Report is a book augmented with two global scalars. Derived, never
// persisted.
type Report struct {
	entities.Book
	TotalBooks          int     `json:"total_books"`
	GlobalAverageRating float64 `json:"global_average_rating"`
}

// Builder builds reading reports on top of the books repository.
type Builder struct {
	books *books.Repository
}

func NewBuilder(repo *books.Repository) *Builder {
	return &Builder{books: repo}
}

// Build fetches the book and augments it with the current total count and
// global average rating. Returns books.ErrNotFound when no book has the ID.
func (b *Builder) Build(id uint) (*Report, error) {
	book, err := b.books.GetByID(id)
	if err != nil {
		return nil, err
	}

	stats, err := b.books.Statistics()
	if err != nil {
		return nil, err
	}

	return &Report{
		Book:                *book,
		TotalBooks:          stats.TotalBooks,
		GlobalAverageRating: stats.AverageRating,
	}, nil
}
