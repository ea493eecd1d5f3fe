package entities

import (
	"time"
)

// Book is a single reading-log entry. Title, author and genre are required
// for every persisted row; the remaining fields carry documented defaults
// applied by the books repository on create.
type Book struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Title     string  `gorm:"index;size:512" json:"title"`
	Author    string  `gorm:"index;size:256" json:"author"`
	Genre     string  `gorm:"index;size:100" json:"genre"`
	Subgenre  string  `gorm:"size:100" json:"subgenre,omitempty"`
	YearRead  int     `gorm:"index" json:"year_read"`
	ReadDate  string  `gorm:"size:10" json:"read_date"` // ISO date, YYYY-MM-DD
	Rating    float64 `json:"rating"`                   // nominal 1-5, not enforced by storage
	Pages     int     `json:"pages"`
	Publisher string  `gorm:"size:256" json:"publisher,omitempty"`
	Comment   string  `gorm:"type:text" json:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// BookColumns is the canonical column order of the books table. CSV exports
// write their header row in exactly this order.
var BookColumns = []string{
	"id", "title", "author", "genre", "subgenre", "year_read",
	"read_date", "rating", "pages", "publisher", "comment",
	"created_at", "updated_at",
}
