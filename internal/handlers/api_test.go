package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
	"crowdfunding-service/internal/services"
)

// newTestApp wires the full API over a per-test in-memory sqlite store,
// mirroring the route table in cmd/main.go. Image storage stays
// unconfigured so its endpoints report unavailable.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Project{},
		&models.Investment{},
		&models.Review{},
	))

	projectRepo := repository.NewProjectRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo, categoryRepo, userRepo))
	investmentHandler := NewInvestmentHandler(services.NewInvestmentService(investmentRepo, projectRepo, userRepo))
	reviewHandler := NewReviewHandler(services.NewReviewService(reviewRepo, projectRepo, userRepo))
	userHandler := NewUserHandler(services.NewUserService(userRepo))
	categoryHandler := NewCategoryHandler(services.NewCategoryService(categoryRepo))
	platformHandler := NewPlatformHandler(services.NewProjectService(projectRepo, categoryRepo, userRepo), services.NewStatsService(statsRepo))
	imageHandler := NewImageHandler(nil)

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/projects", projectHandler.ListProjects)
	api.Post("/projects", projectHandler.CreateProject)
	api.Get("/projects/:id", projectHandler.GetProject)
	api.Put("/projects/:id", projectHandler.UpdateProject)
	api.Post("/projects/:id/image", imageHandler.UploadImage)
	api.Get("/projects/:id/image", imageHandler.DownloadImage)
	api.Post("/investments", investmentHandler.CreateInvestment)
	api.Get("/investments/project/:id", investmentHandler.ListProjectInvestments)
	api.Post("/reviews", reviewHandler.CreateReview)
	api.Get("/reviews/project/:id", reviewHandler.ListProjectReviews)
	api.Post("/users", userHandler.CreateUser)
	api.Get("/users/:id", userHandler.GetUser)
	api.Get("/categories", categoryHandler.ListCategories)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Get("/search", platformHandler.Search)
	api.Get("/statistics", platformHandler.Statistics)
	api.Get("/featured-projects", projectHandler.FeaturedProjects)
	app.Get("/health", platformHandler.Health)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decodeInto(t *testing.T, raw []byte, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, target))
}

func registerUser(t *testing.T, app *fiber.App, username string) models.User {
	t.Helper()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/users", map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var user models.User
	decodeInto(t, raw, &user)
	return user
}

func registerProject(t *testing.T, app *fiber.App, creatorID uint, title string) models.Project {
	t.Helper()
	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/projects", map[string]interface{}{
		"title":       title,
		"description": "A long enough description for " + title,
		"goal":        1000,
		"deadline":    time.Now().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		"category":    "Education",
		"creator_id":  creatorID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var project models.Project
	decodeInto(t, raw, &project)
	return project
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)
	resp, raw := doJSON(t, app, fiber.MethodGet, "/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeInto(t, raw, &body)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestUserEndpoints(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "firstuser")

	t.Run("fetches a user by id", func(t *testing.T) {
		resp, raw := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got models.User
		decodeInto(t, raw, &got)
		assert.Equal(t, "firstuser", got.Username)
	})

	t.Run("duplicate email returns conflict", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/users", map[string]interface{}{
			"username": "othername",
			"email":    "firstuser@example.com",
		})
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("missing user returns not found", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodGet, "/api/users/9999", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid email returns bad request", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/users", map[string]interface{}{
			"username": "badmailuser",
			"email":    "nope",
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestProjectEndpoints(t *testing.T) {
	app := newTestApp(t)
	user := registerUser(t, app, "creator")

	t.Run("create and fetch", func(t *testing.T) {
		project := registerProject(t, app, user.ID, "Village Library Fund")
		resp, raw := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got models.Project
		decodeInto(t, raw, &got)
		assert.Equal(t, "Village Library Fund", got.Title)
		assert.Zero(t, got.RaisedAmount)
	})

	t.Run("unknown creator returns not found", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/projects", map[string]interface{}{
			"title":       "Ghost Creator Campaign",
			"description": "A long enough description goes here",
			"goal":        100,
			"deadline":    time.Now().Add(24 * time.Hour).Format(time.RFC3339),
			"category":    "Misc",
			"creator_id":  9999,
		})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid limit returns bad request", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodGet, "/api/projects?limit=0", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid sort order returns bad request", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodGet, "/api/projects?sort_by=alphabetical", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		project := registerProject(t, app, user.ID, "Partial Update Target")
		resp, raw := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), map[string]interface{}{
			"goal": 2000,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
		var got models.Project
		decodeInto(t, raw, &got)
		assert.Equal(t, "Partial Update Target", got.Title)
		assert.Equal(t, float64(2000), got.Goal)
	})

	t.Run("image endpoints unavailable without storage", func(t *testing.T) {
		project := registerProject(t, app, user.ID, "No Image Storage Here")
		resp, _ := doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/projects/%d/image", project.ID), nil)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestInvestmentFlow(t *testing.T) {
	app := newTestApp(t)
	backer := registerUser(t, app, "backer")
	project := registerProject(t, app, backer.ID, "Education Fund Drive")

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/investments", map[string]interface{}{
		"amount":     400,
		"project_id": project.ID,
		"user_id":    backer.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	resp, raw = doJSON(t, app, fiber.MethodPost, "/api/investments", map[string]interface{}{
		"amount":     600,
		"project_id": project.ID,
		"user_id":    backer.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	resp, raw = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got models.Project
	decodeInto(t, raw, &got)
	assert.Equal(t, float64(1000), got.RaisedAmount)
	assert.Equal(t, 2, got.BackersCount)

	resp, raw = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/investments/project/%d", project.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var investments []models.Investment
	decodeInto(t, raw, &investments)
	assert.Len(t, investments, 2)

	t.Run("zero amount returns bad request", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/investments", map[string]interface{}{
			"amount":     0,
			"project_id": project.ID,
			"user_id":    backer.ID,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestReviewEndpoints(t *testing.T) {
	app := newTestApp(t)
	reviewer := registerUser(t, app, "reviewer")
	project := registerProject(t, app, reviewer.ID, "Reviewed Campaign")

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/reviews", map[string]interface{}{
		"text":       "Really impressive work so far",
		"rating":     5,
		"project_id": project.ID,
		"user_id":    reviewer.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	resp, raw = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/reviews/project/%d", project.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var reviews []models.Review
	decodeInto(t, raw, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestCategoryEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, raw := doJSON(t, app, fiber.MethodPost, "/api/categories?name=Art", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	t.Run("duplicate name returns conflict", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/categories?name=Art", nil)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("missing name returns bad request", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/categories", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("lists all categories", func(t *testing.T) {
		resp, raw := doJSON(t, app, fiber.MethodGet, "/api/categories", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var categories []models.Category
		decodeInto(t, raw, &categories)
		assert.Len(t, categories, 1)
	})
}

func TestSearchAndStatisticsEndpoints(t *testing.T) {
	app := newTestApp(t)
	creator := registerUser(t, app, "creator")
	registerProject(t, app, creator.ID, "Smart Gardens for Cities")

	t.Run("search finds projects by substring", func(t *testing.T) {
		resp, raw := doJSON(t, app, fiber.MethodGet, "/api/search?q=garden", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var result models.SearchResponse
		decodeInto(t, raw, &result)
		assert.Equal(t, int64(1), result.Total)
		require.Len(t, result.Results, 1)
		assert.Equal(t, "Smart Gardens for Cities", result.Results[0].Title)
	})

	t.Run("search without a term returns bad request", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodGet, "/api/search", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("statistics aggregates the platform", func(t *testing.T) {
		resp, raw := doJSON(t, app, fiber.MethodGet, "/api/statistics", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var stats models.Statistics
		decodeInto(t, raw, &stats)
		assert.Equal(t, int64(1), stats.TotalProjects)
		assert.Equal(t, int64(1), stats.TotalUsers)
	})

	t.Run("featured projects respects the limit bound", func(t *testing.T) {
		resp, _ := doJSON(t, app, fiber.MethodGet, "/api/featured-projects?limit=50", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
