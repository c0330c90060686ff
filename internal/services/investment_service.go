package services

import (
	"time"

	"github.com/pkg/errors"

	"crowdfunding-service/internal/apperrors"
	"crowdfunding-service/internal/metrics"
	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
)

// InvestmentService implements pledge creation and per-project pledge
// listings. Creation is the only mutation; an investment is never updated
// or deleted afterwards.
type InvestmentService struct {
	investments *repository.InvestmentRepository
	projects    *repository.ProjectRepository
	users       *repository.UserRepository

	// now is swappable so the deadline gate can be tested.
	now func() time.Time
}

// NewInvestmentService creates a new InvestmentService.
func NewInvestmentService(investments *repository.InvestmentRepository, projects *repository.ProjectRepository, users *repository.UserRepository) *InvestmentService {
	return &InvestmentService{
		investments: investments,
		projects:    projects,
		users:       users,
		now:         time.Now,
	}
}

// CreateInvestment validates the pledge, rejects pledges against closed
// projects, then stores the investment and the project total increments
// as one transactional unit.
func (s *InvestmentService) CreateInvestment(req *models.InvestmentCreateRequest) (*models.Investment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	project, err := s.projects.GetProject(req.ProjectID)
	if err != nil {
		return nil, notFoundOr(err, "project")
	}
	if project.Deadline.Before(s.now()) {
		return nil, apperrors.Expiredf("project has already closed")
	}
	if _, err := s.users.GetUser(req.UserID); err != nil {
		return nil, notFoundOr(err, "user")
	}
	investment := &models.Investment{
		Amount:    req.Amount,
		Message:   req.Message,
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
	}
	if err := s.investments.CreateInvestment(investment); err != nil {
		return nil, errors.Wrap(err, "create investment")
	}
	metrics.InvestmentsCreated.Inc()
	metrics.AmountPledged.Add(req.Amount)
	return investment, nil
}

// ListInvestmentsForProject returns a project's pledges in insertion
// order. Limit falls back to the default when unset.
func (s *InvestmentService) ListInvestmentsForProject(projectID uint, skip, limit int) ([]models.Investment, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	investments, err := s.investments.ListInvestmentsForProject(projectID, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list investments")
	}
	return investments, nil
}
