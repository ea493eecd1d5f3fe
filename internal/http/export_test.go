package http

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/database/books"
)

func setupExportTest(t *testing.T) (*books.Repository, string, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_export_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	exportDir := t.TempDir()
	repo := books.NewRepository(db)
	controller := NewExportController(repo, nil, exportDir)

	router := gin.New()
	router.GET("/api/export", controller.Export)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return repo, exportDir, router, cleanup
}

func TestExportController_Export(t *testing.T) {
	t.Run("empty collection writes no file", func(t *testing.T) {
		_, exportDir, router, cleanup := setupExportTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No books to export")

		entries, err := os.ReadDir(exportDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("writes dated file into export directory", func(t *testing.T) {
		repo, exportDir, router, cleanup := setupExportTest(t)
		defer cleanup()

		_, err := repo.Create(books.BookInput{Title: "Ficciones", Author: "Jorge Luis Borges", Genre: "Cuento"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Books exported to")

		entries, err := os.ReadDir(exportDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, strings.HasPrefix(entries[0].Name(), "lecturas_"))
		assert.True(t, strings.HasSuffix(entries[0].Name(), ".csv"))
	})

	t.Run("honors explicit path parameter", func(t *testing.T) {
		repo, _, router, cleanup := setupExportTest(t)
		defer cleanup()

		_, err := repo.Create(books.BookInput{Title: "El túnel", Author: "Ernesto Sabato", Genre: "Novela"})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "mi_export.csv")
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export?path="+path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		file, err := os.Open(path)
		require.NoError(t, err)
		defer file.Close()

		records, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("applies query parameter filters", func(t *testing.T) {
		repo, _, router, cleanup := setupExportTest(t)
		defer cleanup()

		_, err := repo.Create(books.BookInput{Title: "A", Author: "X", Genre: "Novela"})
		require.NoError(t, err)
		_, err = repo.Create(books.BookInput{Title: "B", Author: "Y", Genre: "Ensayo"})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "filtrado.csv")
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/export?path="+path+"&genre=Novela", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		file, err := os.Open(path)
		require.NoError(t, err)
		defer file.Close()

		records, err := csv.NewReader(file).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "A", records[1][1])
	})
}
