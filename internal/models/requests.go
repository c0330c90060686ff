package models

import (
	"regexp"
	"time"
	"unicode/utf8"

	"crowdfunding-service/internal/apperrors"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// ProjectCreateRequest is the payload for POST /api/projects.
type ProjectCreateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Goal        float64   `json:"goal"`
	Deadline    time.Time `json:"deadline"`
	Category    string    `json:"category"`
	CreatorID   uint      `json:"creator_id"`
}

// Validate checks field bounds before the request reaches storage.
func (r *ProjectCreateRequest) Validate() error {
	if n := utf8.RuneCountInString(r.Title); n < 5 || n > 200 {
		return apperrors.Validationf("title must be between 5 and 200 characters")
	}
	if utf8.RuneCountInString(r.Description) < 20 {
		return apperrors.Validationf("description must be at least 20 characters")
	}
	if r.ImageURL != nil && utf8.RuneCountInString(*r.ImageURL) > 500 {
		return apperrors.Validationf("image_url must be at most 500 characters")
	}
	if r.Goal <= 0 {
		return apperrors.Validationf("goal must be greater than zero")
	}
	if r.Deadline.IsZero() {
		return apperrors.Validationf("deadline is required")
	}
	if r.Category == "" {
		return apperrors.Validationf("category is required")
	}
	if r.CreatorID == 0 {
		return apperrors.Validationf("creator_id is required")
	}
	return nil
}

// ProjectUpdateRequest is the payload for PUT /api/projects/:id. All fields
// are optional; only fields present in the request body are applied.
type ProjectUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url"`
	Goal        *float64   `json:"goal"`
	Deadline    *time.Time `json:"deadline"`
	Category    *string    `json:"category"`
}

// Validate checks bounds for every field that is present.
func (r *ProjectUpdateRequest) Validate() error {
	if r.Title != nil {
		if n := utf8.RuneCountInString(*r.Title); n < 5 || n > 200 {
			return apperrors.Validationf("title must be between 5 and 200 characters")
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) < 20 {
		return apperrors.Validationf("description must be at least 20 characters")
	}
	if r.ImageURL != nil && utf8.RuneCountInString(*r.ImageURL) > 500 {
		return apperrors.Validationf("image_url must be at most 500 characters")
	}
	if r.Goal != nil && *r.Goal <= 0 {
		return apperrors.Validationf("goal must be greater than zero")
	}
	if r.Category != nil && *r.Category == "" {
		return apperrors.Validationf("category must not be empty")
	}
	return nil
}

// InvestmentCreateRequest is the payload for POST /api/investments.
type InvestmentCreateRequest struct {
	Amount    float64 `json:"amount"`
	ProjectID uint    `json:"project_id"`
	UserID    uint    `json:"user_id"`
	Message   *string `json:"message"`
}

func (r *InvestmentCreateRequest) Validate() error {
	if r.Amount <= 0 {
		return apperrors.Validationf("amount must be greater than zero")
	}
	if r.ProjectID == 0 {
		return apperrors.Validationf("project_id is required")
	}
	if r.UserID == 0 {
		return apperrors.Validationf("user_id is required")
	}
	if r.Message != nil && utf8.RuneCountInString(*r.Message) > 500 {
		return apperrors.Validationf("message must be at most 500 characters")
	}
	return nil
}

// ReviewCreateRequest is the payload for POST /api/reviews.
type ReviewCreateRequest struct {
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	ProjectID uint   `json:"project_id"`
	UserID    uint   `json:"user_id"`
}

func (r *ReviewCreateRequest) Validate() error {
	if n := utf8.RuneCountInString(r.Text); n < 10 || n > 1000 {
		return apperrors.Validationf("text must be between 10 and 1000 characters")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return apperrors.Validationf("rating must be between 1 and 5")
	}
	if r.ProjectID == 0 {
		return apperrors.Validationf("project_id is required")
	}
	if r.UserID == 0 {
		return apperrors.Validationf("user_id is required")
	}
	return nil
}

// UserCreateRequest is the payload for POST /api/users.
type UserCreateRequest struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

func (r *UserCreateRequest) Validate() error {
	if n := utf8.RuneCountInString(r.Username); n < 3 || n > 50 {
		return apperrors.Validationf("username must be between 3 and 50 characters")
	}
	if utf8.RuneCountInString(r.Email) > 100 || !emailPattern.MatchString(r.Email) {
		return apperrors.Validationf("email is not a valid email address")
	}
	if r.FullName != nil && utf8.RuneCountInString(*r.FullName) > 100 {
		return apperrors.Validationf("full_name must be at most 100 characters")
	}
	return nil
}
