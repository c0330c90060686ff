package repository

import (
	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
)

// InvestmentRepository provides methods to interact with the Investment model in the database.
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new InvestmentRepository instance with the provided GORM database connection.
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// CreateInvestment persists an Investment and bumps the owning Project's
// raised amount and backer count in the same transaction. The increments
// run as SQL expressions so concurrent pledges against one project
// serialize at the store instead of racing a read-then-write.
func (r *InvestmentRepository) CreateInvestment(investment *models.Investment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(investment).Error; err != nil {
			return err
		}
		res := tx.Model(&models.Project{}).
			Where("id = ?", investment.ProjectID).
			Updates(map[string]interface{}{
				"raised_amount": gorm.Expr("raised_amount + ?", investment.Amount),
				"backers_count": gorm.Expr("backers_count + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListInvestmentsForProject retrieves a Project's Investments in insertion order.
func (r *InvestmentRepository) ListInvestmentsForProject(projectID uint, skip, limit int) ([]models.Investment, error) {
	investments := []models.Investment{}
	err := r.db.Where("project_id = ?", projectID).
		Offset(skip).Limit(limit).Find(&investments).Error
	return investments, err
}
