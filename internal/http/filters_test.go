package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecturas-app/lecturas/internal/config"
	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/entities"
	"github.com/lecturas-app/lecturas/internal/reports"
)

func setupFiltersTest(t *testing.T) (*books.Repository, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_filters_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	sessions, err := NewSessionManager(sqlDB, config.Session{Lifetime: time.Hour})
	require.NoError(t, err)

	repo := books.NewRepository(db)
	booksController := NewBooksController(repo, reports.NewBuilder(repo), sessions)
	filtersController := NewFiltersController(repo, sessions)

	router := gin.New()
	router.Use(sessions.SessionLoadSave())
	router.GET("/api/books", booksController.List)
	router.GET("/api/filters/options", filtersController.Options)
	router.PUT("/api/filters", filtersController.Set)
	router.DELETE("/api/filters", filtersController.Clear)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return repo, router, cleanup
}

func TestFiltersController_Options(t *testing.T) {
	repo, router, cleanup := setupFiltersTest(t)
	defer cleanup()

	_, err := repo.Create(books.BookInput{
		Title: "A", Author: "X", Genre: "Novela", YearRead: intPtr(2021)})
	require.NoError(t, err)
	_, err = repo.Create(books.BookInput{
		Title: "B", Author: "Y", Genre: "Ensayo", YearRead: intPtr(2023)})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/filters/options", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Years      []int    `json:"years"`
		Genres     []string `json:"genres"`
		Vocabulary []string `json:"vocabulary"`
	}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, []int{2023, 2021}, response.Years)
	assert.Equal(t, []string{"Ensayo", "Novela"}, response.Genres)
	assert.Equal(t, entities.Genres, response.Vocabulary)
}

func TestFiltersController_SessionFilters(t *testing.T) {
	repo, router, cleanup := setupFiltersTest(t)
	defer cleanup()

	_, err := repo.Create(books.BookInput{Title: "A", Author: "X", Genre: "Novela"})
	require.NoError(t, err)
	_, err = repo.Create(books.BookInput{Title: "B", Author: "Y", Genre: "Ensayo"})
	require.NoError(t, err)

	// Store a genre filter in the session
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/filters", strings.NewReader(`{"genre":"Ensayo"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	t.Run("stored filter applies to subsequent listings", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, float64(1), response["count"])
	})

	t.Run("explicit query parameters win over the session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books?genre=Novela", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		router.ServeHTTP(w, req)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, float64(1), response["count"])
	})

	t.Run("clearing the filter restores the full listing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/filters", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/books", nil)
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}
		router.ServeHTTP(w, req)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, float64(2), response["count"])
	})
}

func TestParseFilterQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parses all supported parameters", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET",
			"/api/books?year=2023&genre=Novela&min_rating=3.5&max_rating=5&search=soledad", nil)

		filter := parseFilterQuery(c)
		require.NotNil(t, filter.YearRead)
		assert.Equal(t, 2023, *filter.YearRead)
		assert.Equal(t, "Novela", filter.Genre)
		require.NotNil(t, filter.MinRating)
		assert.Equal(t, 3.5, *filter.MinRating)
		require.NotNil(t, filter.MaxRating)
		assert.Equal(t, 5.0, *filter.MaxRating)
		assert.Equal(t, "soledad", filter.Search)
	})

	t.Run("ignores unparsable numeric values", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/books?year=antes&min_rating=alta", nil)

		filter := parseFilterQuery(c)
		assert.Nil(t, filter.YearRead)
		assert.Nil(t, filter.MinRating)
	})

	t.Run("empty query yields zero filter", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/books", nil)

		assert.True(t, parseFilterQuery(c).IsZero())
	})
}
