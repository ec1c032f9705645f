package service

import (
	"context"
	"errors"
	"fmt"

	"power-dashboard/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Signup creates a member with a bcrypt-hashed password, zero score and no
// admin flag. A colliding user_id or email surfaces as ErrConflict.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.Member, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	m := model.Member{
		UserID:   req.UserID,
		NickName: req.NickName,
		Password: string(hash),
		Email:    req.Email,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("user_id or email already exists: %w", ErrConflict)
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return &m, nil
}

// Login returns the member matching (email, password), ErrUnauthorized
// otherwise. An unknown email and a wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Member, error) {
	var m model.Member
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("wrong email or password: %w", ErrUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)) != nil {
		return nil, fmt.Errorf("wrong email or password: %w", ErrUnauthorized)
	}
	return &m, nil
}

// UpdateProfile rewrites nick_name and email, and the password when a new one
// is supplied, after verifying the current credential.
func (s *AuthService) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (*model.Member, error) {
	var m model.Member
	err := s.db.WithContext(ctx).Where("user_id = ?", req.UserID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no such user: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(req.CurrentPassword)) != nil {
		return nil, fmt.Errorf("current password does not match: %w", ErrUnauthorized)
	}

	updates := map[string]interface{}{
		"nick_name": req.NickName,
		"email":     req.Email,
	}
	if req.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["pass"] = string(hash)
	}

	if err := s.db.WithContext(ctx).Model(&m).Updates(updates).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("email already in use: %w", ErrConflict)
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return &m, nil
}

// Get loads one member by user_id.
func (s *AuthService) Get(ctx context.Context, userID string) (*model.Member, error) {
	var m model.Member
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no such user: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	return &m, nil
}

// AddScore accumulates a delta onto the member's score in a single UPDATE and
// returns the new total. Deltas are commutative, so sequential calls sum
// regardless of order.
func (s *AuthService) AddScore(ctx context.Context, userID string, delta int) (int, error) {
	res := s.db.WithContext(ctx).Model(&model.Member{}).
		Where("user_id = ?", userID).
		UpdateColumn("score", gorm.Expr("COALESCE(score, 0) + ?", delta))
	if res.Error != nil {
		return 0, fmt.Errorf("update score: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("no such user: %w", ErrNotFound)
	}

	m, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return m.Score, nil
}

// Score reads the member's current score.
func (s *AuthService) Score(ctx context.Context, userID string) (int, error) {
	m, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	return m.Score, nil
}
