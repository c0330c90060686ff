package services

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"crowdfunding-service/internal/apperrors"
	"crowdfunding-service/internal/metrics"
	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
)

// UserService implements user registration and lookup.
type UserService struct {
	users *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateUser validates the request and registers the user. Both email and
// username are pre-checked so a duplicate yields a clean ConflictError
// instead of a bare constraint violation.
func (s *UserService) CreateUser(req *models.UserCreateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetUserByEmail(req.Email); err == nil {
		return nil, apperrors.Conflictf("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "check email")
	}
	if _, err := s.users.GetUserByUsername(req.Username); err == nil {
		return nil, apperrors.Conflictf("username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "check username")
	}
	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	metrics.UsersRegistered.Inc()
	return user, nil
}

// GetUser returns a single user or NotFoundError.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	user, err := s.users.GetUser(id)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}
