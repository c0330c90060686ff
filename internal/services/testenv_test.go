package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
)

// testEnv wires the full service stack over a per-test in-memory sqlite
// database.
type testEnv struct {
	db          *gorm.DB
	projects    *ProjectService
	investments *InvestmentService
	reviews     *ReviewService
	users       *UserService
	categories  *CategoryService
	stats       *StatsService
}

func newTestEnv(t *testing.T) *testEnv {
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

	return &testEnv{
		db:          db,
		projects:    NewProjectService(projectRepo, categoryRepo, userRepo),
		investments: NewInvestmentService(investmentRepo, projectRepo, userRepo),
		reviews:     NewReviewService(reviewRepo, projectRepo, userRepo),
		users:       NewUserService(userRepo),
		categories:  NewCategoryService(categoryRepo),
		stats:       NewStatsService(statsRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.users.CreateUser(&models.UserCreateRequest{
		Username: username,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createProject(t *testing.T, creator *models.User, title, category string, deadline time.Time) *models.Project {
	t.Helper()
	project, err := e.projects.CreateProject(&models.ProjectCreateRequest{
		Title:       title,
		Description: "A long enough description for " + title,
		Goal:        1000,
		Deadline:    deadline,
		Category:    category,
		CreatorID:   creator.ID,
	})
	require.NoError(t, err)
	return project
}
