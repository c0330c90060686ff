package repository

import (
	"gorm.io/gorm"

	"crowdfunding-service/internal/models"
)

// StatsRepository computes platform-wide aggregates.
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new StatsRepository instance with the provided GORM database connection.
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CollectStatistics gathers project/user counts and money totals. Sums
// coalesce to zero when no projects exist.
func (r *StatsRepository) CollectStatistics() (*models.Statistics, error) {
	stats := &models.Statistics{}
	if err := r.db.Model(&models.Project{}).Count(&stats.TotalProjects).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Project{}).
		Select("COALESCE(SUM(raised_amount), 0)").Scan(&stats.TotalRaised).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Project{}).
		Select("COALESCE(SUM(backers_count), 0)").Scan(&stats.TotalBackers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
