package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/lecturas-app/lecturas/internal/config"
	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/database/books"
)

// StatsCommand prints aggregate reading statistics.
type StatsCommand struct {
	DatabasePath string
}

// NewStatsCommand creates a new StatsCommand.
func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

// ParseFlags parses command line flags.
func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the reading-log database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print aggregate statistics over the reading log.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

// Run executes the stats command.
func (cmd *StatsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := books.NewRepository(db)
	stats, err := repo.Statistics()
	if err != nil {
		return fmt.Errorf("failed to compute statistics: %w", err)
	}

	fmt.Printf("Total books: %d\n", stats.TotalBooks)
	fmt.Printf("Average rating: %.2f\n", stats.AverageRating)

	if len(stats.BooksPerYear) > 0 {
		fmt.Println("\nBooks per year:")
		for _, yc := range stats.BooksPerYear {
			fmt.Printf("  %d: %d\n", yc.Year, yc.Count)
		}
	}

	if len(stats.TopGenres) > 0 {
		fmt.Println("\nTop genres:")
		for _, gc := range stats.TopGenres {
			fmt.Printf("  %s: %d\n", gc.Genre, gc.Count)
		}
	}

	return nil
}
