package service

import (
	"context"
	"fmt"

	"power-dashboard/internal/model"

	"gorm.io/gorm"
)

type AlertService struct{ db *gorm.DB }

func NewAlertService(db *gorm.DB) *AlertService { return &AlertService{db: db} }

// List returns the current alert snapshot, most severe first, newest first
// within a level. Clients poll this on an interval; there is no push path.
func (s *AlertService) List(ctx context.Context) ([]model.Alert, error) {
	var alerts []model.Alert
	err := s.db.WithContext(ctx).
		Order("alert_level DESC, id DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	return alerts, nil
}
