package services

import (
	"langart/internal/models"

	"gorm.io/gorm"
)

// DashboardStats holds the entity counts shown on the admin dashboard.
type DashboardStats struct {
	Courses           int64 `json:"courses"`
	Instructors       int64 `json:"instructors"`
	Testimonials      int64 `json:"testimonials"`
	PricingPlans      int64 `json:"pricingPlans"`
	UnreadSubmissions int64 `json:"unreadSubmissions"`
}

// StatsService computes dashboard statistics.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a StatsService.
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Counts returns the entity counts. Requests are handled one statement at a
// time; there is no need for a transaction around the reads.
func (s *StatsService) Counts() (*DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.Course{}, &stats.Courses},
		{&models.Instructor{}, &stats.Instructors},
		{&models.Testimonial{}, &stats.Testimonials},
		{&models.PricingPlan{}, &stats.PricingPlans},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&models.ContactSubmission{}).
		Where("is_read = ?", false).
		Count(&stats.UnreadSubmissions).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
