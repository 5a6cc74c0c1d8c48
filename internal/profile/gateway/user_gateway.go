// Package gateway performs the Entity <-> DTO <-> record conversions,
// isolating domain logic from the persistence technology. Conversions are
// pure field copies except DTOToRecord, which loads the existing row when
// the DTO carries an id, and RecordToEntity, which resolves owner and
// device names through their relations.
package gateway

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/record"
)

// HashPassword hashes a password using bcrypt. Plaintext passwords never
// cross the persistence boundary.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a stored hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func UserEntityToDTO(e *domain.UserEntity) *dto.UserDTO {
	return &dto.UserDTO{
		Username: e.Username,
		Email:    e.Email,
		Password: e.Password,
		IsActive: true,
	}
}

func UserDTOToEntity(d *dto.UserDTO) *domain.UserEntity {
	return &domain.UserEntity{
		Username: d.Username,
		Email:    d.Email,
		Password: d.Password,
	}
}

// UserDTOToRecord builds the row for the DTO: an update of the existing row
// when the DTO has an id, a new unsaved row otherwise. A non-empty password
// is hashed here and never assigned in plaintext.
func UserDTOToRecord(db *gorm.DB, d *dto.UserDTO) (*record.User, error) {
	var rec record.User
	if d.ID != nil {
		if err := db.First(&rec, *d.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.NotFoundf("user with id %d", *d.ID)
			}
			return nil, err
		}
	}
	rec.Username = d.Username
	rec.Email = d.Email
	rec.IsActive = d.IsActive
	if d.Password != "" {
		hash, err := HashPassword(d.Password)
		if err != nil {
			return nil, err
		}
		rec.PasswordHash = hash
	}
	return &rec, nil
}

func UserRecordToDTO(rec *record.User) *dto.UserDTO {
	id := rec.ID
	joined := rec.DateJoined
	return &dto.UserDTO{
		ID:         &id,
		Username:   rec.Username,
		Email:      rec.Email,
		IsActive:   rec.IsActive,
		DateJoined: &joined,
		LastLogin:  rec.LastLogin,
	}
}

func UserRecordToEntity(rec *record.User) *domain.UserEntity {
	return &domain.UserEntity{
		Username: rec.Username,
		Email:    rec.Email,
	}
}
