package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/reports"
)

// bookRequest is the add/edit form payload. Year and pages arrive as text,
// exactly as the form produces them; unparsable values silently fall back to
// their documented defaults (current year, zero) rather than erroring.
type bookRequest struct {
	Title     string  `json:"title"`
	Author    string  `json:"author"`
	Genre     string  `json:"genre"`
	Subgenre  string  `json:"subgenre"`
	YearRead  string  `json:"year_read"`
	ReadDate  string  `json:"read_date"`
	Rating    float64 `json:"rating"`
	Pages     string  `json:"pages"`
	Publisher string  `json:"publisher"`
	Comment   string  `json:"comment"`
}

func (r bookRequest) toInput() books.BookInput {
	input := books.BookInput{
		Title:     strings.TrimSpace(r.Title),
		Author:    strings.TrimSpace(r.Author),
		Genre:     strings.TrimSpace(r.Genre),
		Subgenre:  r.Subgenre,
		ReadDate:  r.ReadDate,
		Rating:    &r.Rating,
		Publisher: r.Publisher,
		Comment:   r.Comment,
	}

	if raw := strings.TrimSpace(r.YearRead); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			year = time.Now().Year()
		}
		input.YearRead = &year
	}
	if raw := strings.TrimSpace(r.Pages); raw != "" {
		pages, err := strconv.Atoi(raw)
		if err != nil {
			pages = 0
		}
		input.Pages = &pages
	}

	return input
}

// BooksController handles the reading-log CRUD, report and statistics
// intents.
type BooksController struct {
	repo     *books.Repository
	reports  *reports.Builder
	sessions *SessionManager
}

func NewBooksController(repo *books.Repository, builder *reports.Builder, sessions *SessionManager) *BooksController {
	return &BooksController{repo: repo, reports: builder, sessions: sessions}
}

// List returns books matching the request's filters. Explicit query
// parameters win; absent those, the session-stored filter selections apply.
// GET /api/books
func (bc *BooksController) List(c *gin.Context) {
	filter := parseFilterQuery(c)
	if filter.IsZero() && bc.sessions != nil {
		if stored, ok := bc.sessions.GetFilter(c.Request); ok {
			filter = stored
		}
	}

	result, err := bc.repo.List(filter)
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": result, "count": len(result)})
}

// Create adds a new book from the form payload.
// POST /api/books
func (bc *BooksController) Create(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid book payload")
		return
	}

	input := req.toInput()
	if input.Title == "" || input.Author == "" {
		respondBadRequest(c, "title and author are required")
		return
	}

	id, err := bc.repo.Create(input)
	if err != nil {
		if errors.Is(err, books.ErrMissingField) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "could not add the book")
		return
	}

	respondCreated(c, gin.H{"id": id, "message": "Book added"})
}

// Get returns a single book by ID.
// GET /api/books/:id
func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update replaces all fields of an existing book. Unknown IDs are a silent
// no-op, mirroring the storage semantics.
// PUT /api/books/:id
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid book payload")
		return
	}

	input := req.toInput()
	if input.Title == "" || input.Author == "" {
		respondBadRequest(c, "title and author are required")
		return
	}

	if err := bc.repo.Update(id, input); err != nil {
		if errors.Is(err, books.ErrMissingField) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "could not update the book")
		return
	}
	respondSuccess(c, "Book updated")
}

// Delete removes a book. Unknown IDs are a silent no-op.
// DELETE /api/books/:id
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.repo.Delete(id); err != nil {
		respondInternalError(c, err, "could not delete the book")
		return
	}
	respondSuccess(c, "Book deleted")
}

// Report returns the book augmented with global statistics.
// GET /api/books/:id/report
func (bc *BooksController) Report(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := bc.reports.Build(id)
	if err != nil {
		if errors.Is(err, books.ErrNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "build report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// Stats returns the aggregate reading statistics.
// GET /api/stats
func (bc *BooksController) Stats(c *gin.Context) {
	stats, err := bc.repo.Statistics()
	if err != nil {
		respondInternalError(c, err, "compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
