package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lecturas-app/lecturas/internal/config"
	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/exporters"
)

// ExportCommand writes a one-shot CSV export of the reading log.
type ExportCommand struct {
	DatabasePath string
	Output       string
	Year         int
	Genre        string
	MinRating    float64
	MaxRating    float64
	Search       string
}

// NewExportCommand creates a new ExportCommand.
func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

// ParseFlags parses command line flags.
func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the reading-log database")
	fs.StringVar(&cmd.Output, "output", "", "Output CSV path (default: lecturas_YYYYMMDD.csv in the current directory)")
	fs.IntVar(&cmd.Year, "year", 0, "Only export books read in this year")
	fs.StringVar(&cmd.Genre, "genre", "", "Only export books of this genre")
	fs.Float64Var(&cmd.MinRating, "min-rating", 0, "Only export books rated at least this (inclusive)")
	fs.Float64Var(&cmd.MaxRating, "max-rating", 0, "Only export books rated at most this (inclusive)")
	fs.StringVar(&cmd.Search, "search", "", "Only export books whose title or author contains this text")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the reading log to a CSV file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -year 2024 -output lecturas-2024.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -genre Novela -min-rating 4\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the export command.
func (cmd *ExportCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := books.NewRepository(db)

	var filter books.Filter
	if cmd.Year != 0 {
		filter.YearRead = &cmd.Year
	}
	filter.Genre = cmd.Genre
	if cmd.MinRating != 0 {
		filter.MinRating = &cmd.MinRating
	}
	if cmd.MaxRating != 0 {
		filter.MaxRating = &cmd.MaxRating
	}
	filter.Search = cmd.Search

	output := cmd.Output
	if output == "" {
		output = exporters.DefaultFileName(time.Now())
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}

	written, err := repo.ExportCSV(absOutput, filter)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if !written {
		fmt.Println("No books to export with the given filters")
		return nil
	}

	fmt.Printf("Books exported to %s\n", absOutput)
	return nil
}
