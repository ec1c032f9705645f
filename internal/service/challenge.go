package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"power-dashboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChallengeService struct{ db *gorm.DB }

func NewChallengeService(db *gorm.DB) *ChallengeService { return &ChallengeService{db: db} }

// NormalizeDate truncates any time-of-day/timezone suffix so repeated
// submissions for the same calendar date collide on the same key
// ("2023-05-01T14:00:00+09:00" -> "2023-05-01").
func NormalizeDate(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// List returns a user's challenge history, newest first.
func (s *ChallengeService) List(ctx context.Context, userID string) ([]model.ChallengeEntry, error) {
	var entries []model.ChallengeEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("challenge_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query challenge entries: %w", err)
	}
	return entries, nil
}

// Upsert records one day's stamps as a single atomic insert-or-update on the
// (user_id, challenge_date) key. Missing stamps default to 'X', missing
// save_kwh to 0; user_id and challenge_date are immutable once stored.
func (s *ChallengeService) Upsert(ctx context.Context, req model.ChallengeRequest) (*model.ChallengeEntry, error) {
	entry := model.ChallengeEntry{
		UserID:          req.UserID,
		ChallengeDate:   NormalizeDate(req.ChallengeDate),
		StampAir:        defaultStamp(req.StampAir),
		StampOff:        defaultStamp(req.StampOff),
		StampPower:      defaultStamp(req.StampPower),
		StampEfficiency: defaultStamp(req.StampEfficiency),
		StampEtc:        req.StampEtc,
		SaveKwh:         req.SaveKwh,
		UpdateAt:        time.Now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "challenge_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"stamp_air", "stamp_off", "stamp_power", "stamp_efficiency",
			"stamp_etc", "save_kwh", "update_at",
		}),
	}).Create(&entry).Error
	if err != nil {
		return nil, fmt.Errorf("upsert challenge entry: %w", err)
	}
	return &entry, nil
}

// Delete removes one entry by (user, date) and returns the removed row.
func (s *ChallengeService) Delete(ctx context.Context, userID, date string) (*model.ChallengeEntry, error) {
	day := NormalizeDate(date)
	var entry model.ChallengeEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND challenge_date = ?", userID, day).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no challenge entry for that date: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query challenge entry: %w", err)
	}

	res := s.db.WithContext(ctx).
		Where("user_id = ? AND challenge_date = ?", userID, day).
		Delete(&model.ChallengeEntry{})
	if res.Error != nil {
		return nil, fmt.Errorf("delete challenge entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("no challenge entry for that date: %w", ErrNotFound)
	}
	return &entry, nil
}

// Stats aggregates a user's whole challenge history: days logged, per-stamp
// completion counts, and total saved kWh.
func (s *ChallengeService) Stats(ctx context.Context, userID string) (*model.ChallengeStats, error) {
	entries, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := model.ChallengeStats{TotalDays: len(entries)}
	for _, e := range entries {
		if e.StampAir == model.StampDone {
			stats.AirCount++
		}
		if e.StampOff == model.StampDone {
			stats.OffCount++
		}
		if e.StampPower == model.StampDone {
			stats.PowerCount++
		}
		if e.StampEfficiency == model.StampDone {
			stats.EfficiencyCount++
		}
		stats.TotalKwh += e.SaveKwh
	}
	return &stats, nil
}

func defaultStamp(s string) string {
	if s == "" {
		return model.StampMissed
	}
	return s
}
