// Package books provides database operations for reading-log entries.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	id, err := repo.Create(books.BookInput{Title: "Rayuela", Author: "Cortázar", Genre: "Novela"})
//	entries, err := repo.List(books.Filter{Genre: "Novela"})
package books

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/entities"
	"github.com/lecturas-app/lecturas/internal/exporters"
)

var (
	// ErrNotFound is returned when no book has the requested ID.
	ErrNotFound = errors.New("book not found")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("missing required field")
)

// BookInput carries the mutable fields of a book for create and update
// operations. Title, author and genre are required; nil pointer fields take
// their documented defaults (current year, today, zero).
type BookInput struct {
	Title     string
	Author    string
	Genre     string
	Subgenre  string
	YearRead  *int
	ReadDate  string
	Rating    *float64
	Pages     *int
	Publisher string
	Comment   string
}

// Filter narrows List results. All supplied criteria are ANDed together;
// the zero value matches every book.
type Filter struct {
	ID        *uint
	YearRead  *int
	Genre     string
	MinRating *float64 // inclusive
	MaxRating *float64 // inclusive
	Search    string   // case-insensitive substring over title OR author
}

// IsZero reports whether no criteria were supplied.
func (f Filter) IsZero() bool {
	return f.ID == nil && f.YearRead == nil && f.Genre == "" &&
		f.MinRating == nil && f.MaxRating == nil && f.Search == ""
}

// Repository handles all book database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new books repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

func validateInput(input BookInput) error {
	if input.Title == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if input.Author == "" {
		return fmt.Errorf("%w: author", ErrMissingField)
	}
	if input.Genre == "" {
		return fmt.Errorf("%w: genre", ErrMissingField)
	}
	return nil
}

// applyDefaults materializes the documented defaults for absent optional
// fields: year read falls back to the current year, read date to today,
// rating and pages to zero.
func applyDefaults(input BookInput) entities.Book {
	now := time.Now()

	book := entities.Book{
		Title:     input.Title,
		Author:    input.Author,
		Genre:     input.Genre,
		Subgenre:  input.Subgenre,
		YearRead:  now.Year(),
		ReadDate:  now.Format("2006-01-02"),
		Publisher: input.Publisher,
		Comment:   input.Comment,
	}
	if input.YearRead != nil {
		book.YearRead = *input.YearRead
	}
	if input.ReadDate != "" {
		book.ReadDate = input.ReadDate
	}
	if input.Rating != nil {
		book.Rating = *input.Rating
	}
	if input.Pages != nil {
		book.Pages = *input.Pages
	}
	return book
}

// Create inserts a new book and returns its assigned ID. Required fields are
// validated before anything reaches storage.
func (r *Repository) Create(input BookInput) (uint, error) {
	if err := validateInput(input); err != nil {
		return 0, err
	}

	book := applyDefaults(input)
	if err := r.db.DB.Create(&book).Error; err != nil {
		return 0, err
	}
	return book.ID, nil
}

// List returns every book matching the filter, ordered by read date
// descending.
func (r *Repository) List(filter Filter) ([]entities.Book, error) {
	query := r.db.DB.Model(&entities.Book{})

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.YearRead != nil {
		query = query.Where("year_read = ?", *filter.YearRead)
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		query = query.Where("rating <= ?", *filter.MaxRating)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", pattern, pattern)
	}

	var result []entities.Book
	err := query.Order("read_date DESC").Find(&result).Error
	return result, err
}

// GetByID retrieves a single book. Returns ErrNotFound when absent.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.DB.First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Update replaces every mutable field of the book with the given ID and
// refreshes its update timestamp. Updating an unknown ID affects zero rows
// and is not an error.
func (r *Repository) Update(id uint, input BookInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	book := applyDefaults(input)
	return r.db.DB.Model(&entities.Book{}).Where("id = ?", id).Updates(map[string]any{
		"title":     book.Title,
		"author":    book.Author,
		"genre":     book.Genre,
		"subgenre":  book.Subgenre,
		"year_read": book.YearRead,
		"read_date": book.ReadDate,
		"rating":    book.Rating,
		"pages":     book.Pages,
		"publisher": book.Publisher,
		"comment":   book.Comment,
	}).Error
}

// Delete removes the book with the given ID. Deleting an unknown ID is a
// no-op.
func (r *Repository) Delete(id uint) error {
	return r.db.DB.Delete(&entities.Book{}, id).Error
}

// Years returns the distinct years read, newest first, for filter options.
func (r *Repository) Years() ([]int, error) {
	var years []int
	err := r.db.DB.Model(&entities.Book{}).
		Distinct("year_read").
		Order("year_read DESC").
		Pluck("year_read", &years).Error
	return years, err
}

// Genres returns the distinct genres present in the log, sorted, for filter
// options.
func (r *Repository) Genres() ([]string, error) {
	var genres []string
	err := r.db.DB.Model(&entities.Book{}).
		Distinct("genre").
		Order("genre ASC").
		Pluck("genre", &genres).Error
	return genres, err
}

// ExportCSV writes every book matching the filter to a CSV file at path.
// Returns false without creating or touching the file when nothing matches.
func (r *Repository) ExportCSV(path string, filter Filter) (bool, error) {
	matched, err := r.List(filter)
	if err != nil {
		return false, err
	}
	if len(matched) == 0 {
		return false, nil
	}

	if _, err := exporters.NewCSVExporter(path).Export(matched); err != nil {
		return false, err
	}
	return true, nil
}
