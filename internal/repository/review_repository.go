package repository

import (
	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
)

// ReviewRepository provides methods to interact with the Review model in the database.
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository instance with the provided GORM database connection.
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview creates a new Review in the database.
func (r *ReviewRepository) CreateReview(review *models.Review) error {
	return r.db.Create(review).Error
}

// ListReviewsForProject retrieves a Project's Reviews, most recent first.
func (r *ReviewRepository) ListReviewsForProject(projectID uint, skip, limit int) ([]models.Review, error) {
	reviews := []models.Review{}
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).Find(&reviews).Error
	return reviews, err
}
