package services

import (
	"errors"

	"langart/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteConfigService owns the singleton settings row.
type SiteConfigService struct {
	db *gorm.DB
}

// NewSiteConfigService creates a SiteConfigService.
func NewSiteConfigService(db *gorm.DB) *SiteConfigService {
	return &SiteConfigService{db: db}
}

// Get returns the settings row, creating it with defaults when absent.
// The create is keyed on the fixed ID so concurrent first reads cannot
// produce duplicates.
func (s *SiteConfigService) Get() (*models.SiteConfig, error) {
	var config models.SiteConfig
	err := s.db.First(&config, models.SiteConfigID).Error
	if err == nil {
		return &config, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := models.DefaultSiteConfig()
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(defaults).Error; err != nil {
		return nil, err
	}
	// Re-read: another request may have won the insert race
	if err := s.db.First(&config, models.SiteConfigID).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

// Update replaces the settings row fields. The ID stays fixed.
func (s *SiteConfigService) Update(config *models.SiteConfig) (*models.SiteConfig, error) {
	if _, err := s.Get(); err != nil {
		return nil, err
	}
	config.ID = models.SiteConfigID
	if err := s.db.Model(&models.SiteConfig{}).Where("id = ?", models.SiteConfigID).
		Select("*").Omit("id").Updates(config).Error; err != nil {
		return nil, err
	}
	var updated models.SiteConfig
	if err := s.db.First(&updated, models.SiteConfigID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}
