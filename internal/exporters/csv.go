package exporters

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lecturas-app/lecturas/internal/entities"
)

// CSVExporter writes books to a UTF-8, comma-delimited file with a header
// row. An existing file at the target path is fully overwritten.
type CSVExporter struct {
	Path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{Path: path}
}

func (e *CSVExporter) Export(books []entities.Book) (ExportResult, error) {
	file, err := os.Create(e.Path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(entities.BookColumns); err != nil {
		return ExportResult{}, err
	}

	for _, book := range books {
		if err := writer.Write(bookRecord(book)); err != nil {
			return ExportResult{}, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return ExportResult{}, err
	}

	return ExportResult{BooksExported: len(books), Path: e.Path}, nil
}

// bookRecord renders one CSV row in entities.BookColumns order.
func bookRecord(book entities.Book) []string {
	return []string{
		strconv.FormatUint(uint64(book.ID), 10),
		book.Title,
		book.Author,
		book.Genre,
		book.Subgenre,
		strconv.Itoa(book.YearRead),
		book.ReadDate,
		strconv.FormatFloat(book.Rating, 'f', -1, 64),
		strconv.Itoa(book.Pages),
		book.Publisher,
		book.Comment,
		book.CreatedAt.Format(time.RFC3339),
		book.UpdatedAt.Format(time.RFC3339),
	}
}

// DefaultFileName returns the dated default export name, e.g.
// "lecturas_20250131.csv".
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("lecturas_%s.csv", now.Format("20060102"))
}
