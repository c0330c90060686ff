package services

import (
	"github.com/pkg/errors"

	"crowdfunding-service/internal/models"
	"crowdfunding-service/internal/repository"
)

// StatsService exposes the platform-wide aggregates.
type StatsService struct {
	stats *repository.StatsRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(stats *repository.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// GetStatistics returns total project/user counts and money totals.
func (s *StatsService) GetStatistics() (*models.Statistics, error) {
	stats, err := s.stats.CollectStatistics()
	if err != nil {
		return nil, errors.Wrap(err, "collect statistics")
	}
	return stats, nil
}
