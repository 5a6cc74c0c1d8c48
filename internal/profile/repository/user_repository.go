package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/gateway"
	"profile-backend/internal/profile/record"
)

// gormUserRepository implements UserRepository over the relational store.
type gormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new GORM-backed UserRepository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Add(user *domain.UserEntity) (*domain.UserEntity, error) {
	if user.Username == "" {
		return nil, fmt.Errorf("username must not be empty: %w", domain.ErrValidation)
	}

	var count int64
	if err := r.db.Model(&record.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.DuplicateUser(user.Username)
	}

	d := gateway.UserEntityToDTO(user)
	rec, err := gateway.UserDTOToRecord(r.db, d)
	if err != nil {
		return nil, err
	}
	if err := r.db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.DuplicateUser(user.Username)
		}
		return nil, err
	}
	return gateway.UserRecordToEntity(rec), nil
}

func (r *gormUserRepository) FindByUsername(username string) (*domain.UserEntity, error) {
	rec, err := r.findRecord(username)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return gateway.UserRecordToEntity(rec), nil
}

func (r *gormUserRepository) Delete(username string) error {
	// Device and session rows go with the user via the store's cascade.
	return r.db.Where("username = ?", username).Delete(&record.User{}).Error
}

func (r *gormUserRepository) ChangePassword(username, newPassword string) error {
	rec, err := r.findRecord(username)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.NotFoundf("user %q", username)
	}
	hash, err := gateway.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return r.db.Model(rec).Update("password_hash", hash).Error
}

func (r *gormUserRepository) Authenticate(username, password string) (*domain.UserEntity, error) {
	rec, err := r.findRecord(username)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.IsActive || !gateway.CheckPasswordHash(password, rec.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	now := time.Now()
	if err := r.db.Model(rec).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	return gateway.UserRecordToEntity(rec), nil
}

func (r *gormUserRepository) findRecord(username string) (*record.User, error) {
	var rec record.User
	err := r.db.Where("username = ?", username).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
