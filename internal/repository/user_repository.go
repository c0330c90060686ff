package repository

import (
	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
)

// UserRepository provides methods to interact with the User model in the database.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository instance with the provided GORM database connection.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser creates a new User in the database.
func (r *UserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// GetUser retrieves a User by its ID from the database.
func (r *UserRepository) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	return &user, err
}

// GetUserByEmail retrieves a User by email.
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	return &user, err
}

// GetUserByUsername retrieves a User by username.
func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	return &user, err
}
