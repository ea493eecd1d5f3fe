package exporters

import "github.com/lecturas-app/lecturas/internal/entities"

type BookExporter interface {
	Export(books []entities.Book) (ExportResult, error)
}

type ExportResult struct {
	BooksExported int    `json:"books_exported"`
	Path          string `json:"path"`
}
