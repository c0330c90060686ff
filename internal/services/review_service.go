package services

import (
	"github.com/pkg/errors"

	"crowdfunding-service/internal/metrics"
	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
)

// ReviewService implements review creation and per-project review
// listings. Nothing stops a user from reviewing the same project twice,
// and reviewers are not required to have invested.
type ReviewService struct {
	reviews  *repository.ReviewRepository
	projects *repository.ProjectRepository
	users    *repository.UserRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviews *repository.ReviewRepository, projects *repository.ProjectRepository, users *repository.UserRepository) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		projects: projects,
		users:    users,
	}
}

// CreateReview validates the request, checks both references exist and
// stores the review.
func (s *ReviewService) CreateReview(req *models.ReviewCreateRequest) (*models.Review, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetProject(req.ProjectID); err != nil {
		return nil, notFoundOr(err, "project")
	}
	if _, err := s.users.GetUser(req.UserID); err != nil {
		return nil, notFoundOr(err, "user")
	}
	review := &models.Review{
		Text:      req.Text,
		Rating:    req.Rating,
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
	}
	if err := s.reviews.CreateReview(review); err != nil {
		return nil, errors.Wrap(err, "create review")
	}
	metrics.ReviewsCreated.Inc()
	return review, nil
}

// ListReviewsForProject returns a project's reviews, most recent first.
// Limit falls back to the default when unset.
func (s *ReviewService) ListReviewsForProject(projectID uint, skip, limit int) ([]models.Review, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	reviews, err := s.reviews.ListReviewsForProject(projectID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}
	return reviews, nil
}
