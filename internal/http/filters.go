package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/entities"
)

// filterRequest mirrors the filter selections of the table view. All fields
// are optional; absent fields leave the corresponding criterion unset.
type filterRequest struct {
	YearRead  *int     `json:"year_read"`
	Genre     string   `json:"genre"`
	MinRating *float64 `json:"min_rating"`
	MaxRating *float64 `json:"max_rating"`
	Search    string   `json:"search"`
}

func (r filterRequest) toFilter() books.Filter {
	return books.Filter{
		YearRead:  r.YearRead,
		Genre:     r.Genre,
		MinRating: r.MinRating,
		MaxRating: r.MaxRating,
		Search:    r.Search,
	}
}

// parseFilterQuery builds a filter from query parameters (year, genre,
// min_rating, max_rating, search). Unparsable numeric values are ignored,
// matching the view's behavior of only submitting well-formed selections.
func parseFilterQuery(c *gin.Context) books.Filter {
	var filter books.Filter

	if raw := c.Query("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil {
			filter.YearRead = &year
		}
	}
	filter.Genre = c.Query("genre")
	if raw := c.Query("min_rating"); raw != "" {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinRating = &rating
		}
	}
	if raw := c.Query("max_rating"); raw != "" {
		if rating, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxRating = &rating
		}
	}
	filter.Search = c.Query("search")

	return filter
}

// FiltersController manages the filter option lists and the session-stored
// filter selections.
type FiltersController struct {
	repo     *books.Repository
	sessions *SessionManager
}

func NewFiltersController(repo *books.Repository, sessions *SessionManager) *FiltersController {
	return &FiltersController{repo: repo, sessions: sessions}
}

// Options returns the distinct years and genres present in the log plus the
// genre vocabulary, for populating the filter and form selectors.
// GET /api/filters/options
func (fc *FiltersController) Options(c *gin.Context) {
	years, err := fc.repo.Years()
	if err != nil {
		respondInternalError(c, err, "load filter options")
		return
	}
	genres, err := fc.repo.Genres()
	if err != nil {
		respondInternalError(c, err, "load filter options")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"years":      years,
		"genres":     genres,
		"vocabulary": entities.Genres,
	})
}

// Set stores the given filter selections in the session so that subsequent
// list and export requests reuse them.
// PUT /api/filters
func (fc *FiltersController) Set(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid filter payload")
		return
	}

	if err := fc.sessions.SetFilter(c.Request, req.toFilter()); err != nil {
		respondInternalError(c, err, "store filters")
		return
	}
	respondSuccess(c, "Filters applied")
}

// Clear removes the stored filter selections.
// DELETE /api/filters
func (fc *FiltersController) Clear(c *gin.Context) {
	fc.sessions.ClearFilter(c.Request)
	respondSuccess(c, "Filters cleared")
}
