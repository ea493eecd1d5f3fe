package books

// Statistics aggregates the full book collection. Computed fresh on every
// call, never cached.
type Statistics struct {
	TotalBooks    int          `json:"total_books"`
	BooksPerYear  []YearCount  `json:"books_per_year"`
	AverageRating float64      `json:"average_rating"`
	TopGenres     []GenreCount `json:"top_genres"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// Statistics computes the aggregate in four independent passes over the raw
// statement primitive: total count, per-year breakdown, global average
// rating and the five most frequent genres.
func (r *Repository) Statistics() (Statistics, error) {
	stats := Statistics{
		BooksPerYear: []YearCount{},
		TopGenres:    []GenreCount{},
	}

	rows, err := r.db.Query("SELECT COUNT(*) FROM books")
	if err != nil {
		return stats, err
	}
	stats.TotalBooks = int(asInt(rows[0][0]))

	rows, err = r.db.Query(
		"SELECT year_read, COUNT(*) FROM books GROUP BY year_read ORDER BY year_read DESC")
	if err != nil {
		return stats, err
	}
	for _, row := range rows {
		stats.BooksPerYear = append(stats.BooksPerYear, YearCount{
			Year:  int(asInt(row[0])),
			Count: int(asInt(row[1])),
		})
	}

	// AVG over zero rows yields NULL, which asFloat maps to 0.
	rows, err = r.db.Query("SELECT AVG(rating) FROM books")
	if err != nil {
		return stats, err
	}
	stats.AverageRating = asFloat(rows[0][0])

	rows, err = r.db.Query(
		"SELECT genre, COUNT(*) AS count FROM books GROUP BY genre ORDER BY count DESC LIMIT 5")
	if err != nil {
		return stats, err
	}
	for _, row := range rows {
		stats.TopGenres = append(stats.TopGenres, GenreCount{
			Genre: asString(row[0]),
			Count: int(asInt(row[1])),
		})
	}

	return stats, nil
}

// The raw statement primitive returns whatever the SQLite driver produced;
// these coercions cover the handful of shapes aggregate queries yield.

func asInt(v any) int64 {
	switch value := v.(type) {
	case int64:
		return value
	case float64:
		return int64(value)
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case int64:
		return float64(value)
	default:
		return 0
	}
}

func asString(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	default:
		return ""
	}
}
