package http

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/exporters"
)

// ExportController writes CSV exports of the (possibly filtered) log.
type ExportController struct {
	repo      *books.Repository
	sessions  *SessionManager
	exportDir string
}

func NewExportController(repo *books.Repository, sessions *SessionManager, exportDir string) *ExportController {
	return &ExportController{repo: repo, sessions: sessions, exportDir: exportDir}
}

// Export writes the books matching the current filters to a CSV file. The
// target path comes from the "path" query parameter, defaulting to a dated
// file in the configured export directory. When nothing matches, no file is
// created and the response says so.
// GET /api/export
func (ec *ExportController) Export(c *gin.Context) {
	filter := parseFilterQuery(c)
	if filter.IsZero() && ec.sessions != nil {
		if stored, ok := ec.sessions.GetFilter(c.Request); ok {
			filter = stored
		}
	}

	path := c.Query("path")
	if path == "" {
		if err := os.MkdirAll(ec.exportDir, 0755); err != nil {
			respondInternalError(c, err, "create export directory")
			return
		}
		path = filepath.Join(ec.exportDir, exporters.DefaultFileName(time.Now()))
	}

	written, err := ec.repo.ExportCSV(path, filter)
	if err != nil {
		respondInternalError(c, err, "could not export books")
		return
	}
	if !written {
		c.JSON(http.StatusOK, SuccessResponse{Message: "No books to export with the current filters"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Books exported to " + path,
		Data:    gin.H{"path": path},
	})
}
