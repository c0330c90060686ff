package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
)

// newTestDB opens a per-test in-memory sqlite database with the full
// schema migrated. The pool is capped at one connection so the memory
// database is not silently duplicated.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedProject(t *testing.T, db *gorm.DB, creator *models.User, category *models.Category, title string, mutate ...func(*models.Project)) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:       title,
		Description: "A long enough description for " + title,
		Goal:        1000,
		Deadline:    time.Now().Add(30 * 24 * time.Hour),
		CategoryID:  category.ID,
		CreatorID:   creator.ID,
	}
	for _, m := range mutate {
		m(project)
	}
	require.NoError(t, db.Create(project).Error)
	return project
}
