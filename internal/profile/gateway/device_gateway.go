package gateway

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/record"
)

// DeviceEntityToDTO copies the entity into a DTO. The owner id must be
// supplied by the caller because the entity references its owner by name.
func DeviceEntityToDTO(e *domain.DeviceEntity, userID *uint) *dto.DeviceDTO {
	return &dto.DeviceDTO{
		ID:         e.DeviceID,
		Name:       e.Name,
		DeviceType: e.DeviceType,
		Platform:   e.Platform,
		UserID:     userID,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// DeviceDTOToEntity copies the DTO back; the owner name must be supplied by
// the caller because the DTO references its owner by id.
func DeviceDTOToEntity(d *dto.DeviceDTO, username string) *domain.DeviceEntity {
	return &domain.DeviceEntity{
		DeviceID:   d.ID,
		Name:       d.Name,
		DeviceType: d.DeviceType,
		Platform:   d.Platform,
		Username:   username,
		IsActive:   d.IsActive,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// DeviceDTOToRecord loads the existing row when the DTO has an id and
// mutates its editable fields, or builds a new unsaved row otherwise.
func DeviceDTOToRecord(db *gorm.DB, d *dto.DeviceDTO) (*record.Device, error) {
	var rec record.Device
	if d.ID != nil {
		if err := db.First(&rec, *d.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.NotFoundf("device with id %d", *d.ID)
			}
			return nil, err
		}
	} else if d.UserID == nil {
		return nil, fmt.Errorf("device %q has no owner: %w", d.Name, domain.ErrValidation)
	}
	rec.Name = d.Name
	rec.DeviceType = d.DeviceType
	rec.Platform = d.Platform
	rec.IsActive = d.IsActive
	if d.UserID != nil {
		rec.UserID = *d.UserID
	}
	return &rec, nil
}

// DeviceRecordToDTO is a pure copy including the store-assigned id and
// timestamps.
func DeviceRecordToDTO(rec *record.Device) *dto.DeviceDTO {
	id := rec.ID
	userID := rec.UserID
	created := rec.CreatedAt
	updated := rec.UpdatedAt
	return &dto.DeviceDTO{
		ID:         &id,
		Name:       rec.Name,
		DeviceType: rec.DeviceType,
		Platform:   rec.Platform,
		UserID:     &userID,
		IsActive:   rec.IsActive,
		CreatedAt:  &created,
		UpdatedAt:  &updated,
	}
}

// DeviceRecordToEntity resolves the owner's username through the relation.
// A device row whose user cannot be resolved is a relation-integrity fault,
// reported rather than papered over with a blank name.
func DeviceRecordToEntity(db *gorm.DB, rec *record.Device) (*domain.DeviceEntity, error) {
	var owner record.User
	if err := db.First(&owner, rec.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.RelationIntegrityf("device %d references missing user %d", rec.ID, rec.UserID)
		}
		return nil, err
	}
	id := rec.ID
	created := rec.CreatedAt
	updated := rec.UpdatedAt
	return &domain.DeviceEntity{
		DeviceID:   &id,
		Name:       rec.Name,
		DeviceType: rec.DeviceType,
		Platform:   rec.Platform,
		Username:   owner.Username,
		IsActive:   rec.IsActive,
		CreatedAt:  &created,
		UpdatedAt:  &updated,
	}, nil
}
