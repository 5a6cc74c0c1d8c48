package gateway

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/record"
)

// SessionEntityToDTO copies the entity into a DTO; the resolved owner and
// device ids are supplied by the caller.
func SessionEntityToDTO(e *domain.SessionEntity, userID, deviceID *uint) *dto.SessionDTO {
	return &dto.SessionDTO{
		ID:           e.SessionID,
		SessionToken: e.SessionToken,
		UserID:       userID,
		DeviceID:     deviceID,
		IPAddress:    e.IPAddress,
		UserAgent:    e.UserAgent,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
		LastActivity: e.LastActivity,
	}
}

// SessionDTOToEntity copies the DTO back; the resolved owner and device
// names are supplied by the caller.
func SessionDTOToEntity(d *dto.SessionDTO, username string, deviceName *string) *domain.SessionEntity {
	return &domain.SessionEntity{
		SessionID:    d.ID,
		SessionToken: d.SessionToken,
		Username:     username,
		DeviceName:   deviceName,
		IPAddress:    d.IPAddress,
		UserAgent:    d.UserAgent,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
		LastActivity: d.LastActivity,
	}
}

// SessionDTOToRecord loads the existing row when the DTO has an id, or
// builds a new unsaved row otherwise.
func SessionDTOToRecord(db *gorm.DB, d *dto.SessionDTO) (*record.Session, error) {
	var rec record.Session
	if d.ID != nil {
		if err := db.First(&rec, *d.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.NotFoundf("session with id %d", *d.ID)
			}
			return nil, err
		}
	} else if d.UserID == nil {
		return nil, fmt.Errorf("session %q has no owner: %w", d.SessionToken, domain.ErrValidation)
	}
	rec.SessionToken = d.SessionToken
	rec.IPAddress = d.IPAddress
	rec.UserAgent = d.UserAgent
	rec.IsActive = d.IsActive
	if d.UserID != nil {
		rec.UserID = *d.UserID
	}
	if d.DeviceID != nil {
		rec.DeviceID = d.DeviceID
	}
	return &rec, nil
}

func SessionRecordToDTO(rec *record.Session) *dto.SessionDTO {
	id := rec.ID
	userID := rec.UserID
	created := rec.CreatedAt
	return &dto.SessionDTO{
		ID:           &id,
		SessionToken: rec.SessionToken,
		UserID:       &userID,
		DeviceID:     rec.DeviceID,
		IPAddress:    rec.IPAddress,
		UserAgent:    rec.UserAgent,
		IsActive:     rec.IsActive,
		CreatedAt:    &created,
		LastActivity: rec.LastActivity,
	}
}

// SessionRecordToEntity resolves the owner's username and, when the device
// reference is still set, the device name. A dangling reference is a
// relation-integrity fault.
func SessionRecordToEntity(db *gorm.DB, rec *record.Session) (*domain.SessionEntity, error) {
	var owner record.User
	if err := db.First(&owner, rec.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.RelationIntegrityf("session %d references missing user %d", rec.ID, rec.UserID)
		}
		return nil, err
	}

	var deviceName *string
	if rec.DeviceID != nil {
		var device record.Device
		if err := db.First(&device, *rec.DeviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.RelationIntegrityf("session %d references missing device %d", rec.ID, *rec.DeviceID)
			}
			return nil, err
		}
		deviceName = &device.Name
	}

	id := rec.ID
	created := rec.CreatedAt
	return &domain.SessionEntity{
		SessionID:    &id,
		SessionToken: rec.SessionToken,
		Username:     owner.Username,
		DeviceName:   deviceName,
		IPAddress:    rec.IPAddress,
		UserAgent:    rec.UserAgent,
		IsActive:     rec.IsActive,
		CreatedAt:    &created,
		LastActivity: rec.LastActivity,
	}, nil
}
