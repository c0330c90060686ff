package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crowdfunding-service/internal/apperrors"
	"crowdfunding-service/internal/models"
)

func TestUserServiceCreateUser(t *testing.T) {
	env := newTestEnv(t)

	t.Run("registers a user", func(t *testing.T) {
		fullName := "Alex Chen"
		user, err := env.users.CreateUser(&models.UserCreateRequest{
			Username: "alexchen",
			Email:    "alex@example.com",
			FullName: &fullName,
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "alexchen", user.Username)
	})

	t.Run("duplicate email conflicts regardless of other fields", func(t *testing.T) {
		_, err := env.users.CreateUser(&models.UserCreateRequest{
			Username: "differentname",
			Email:    "alex@example.com",
		})
		var conflict *apperrors.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		_, err := env.users.CreateUser(&models.UserCreateRequest{
			Username: "alexchen",
			Email:    "other@example.com",
		})
		var conflict *apperrors.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		_, err := env.users.CreateUser(&models.UserCreateRequest{
			Username: "validname",
			Email:    "not-an-email",
		})
		var validation *apperrors.ValidationError
		require.ErrorAs(t, err, &validation)
	})

	t.Run("short username fails validation", func(t *testing.T) {
		_, err := env.users.CreateUser(&models.UserCreateRequest{
			Username: "ab",
			Email:    "ab@example.com",
		})
		var validation *apperrors.ValidationError
		require.ErrorAs(t, err, &validation)
	})
}

func TestUserServiceGetUser(t *testing.T) {
	env := newTestEnv(t)
	created := env.createUser(t, "lookup")

	got, err := env.users.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, got.Username)

	_, err = env.users.GetUser(99999)
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCategoryServiceCreateCategory(t *testing.T) {
	env := newTestEnv(t)

	category, err := env.categories.CreateCategory("Photography")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)

	t.Run("duplicate name conflicts", func(t *testing.T) {
		_, err := env.categories.CreateCategory("Photography")
		var conflict *apperrors.ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("empty name fails validation", func(t *testing.T) {
		_, err := env.categories.CreateCategory("")
		var validation *apperrors.ValidationError
		require.ErrorAs(t, err, &validation)
	})
}

func TestStatsServiceGetStatistics(t *testing.T) {
	env := newTestEnv(t)

	stats, err := env.stats.GetStatistics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProjects)
	assert.Zero(t, stats.TotalUsers)

	creator := env.createUser(t, "creator")
	env.createProject(t, creator, "Counted Campaign", "General", time.Now().Add(30*24*time.Hour))

	stats, err = env.stats.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalProjects)
	assert.Equal(t, int64(1), stats.TotalUsers)
}
