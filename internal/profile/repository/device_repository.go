package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/gateway"
	"profile-backend/internal/profile/record"
)

// gormDeviceRepository implements DeviceRepository. Writes go through the
// gateway chain; read results come back through the reflective mapper once
// the owner name is known.
type gormDeviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new GORM-backed DeviceRepository.
func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &gormDeviceRepository{db: db}
}

func (r *gormDeviceRepository) Add(device *domain.DeviceEntity) (*domain.DeviceEntity, error) {
	owner, err := r.resolveOwner(device.Username)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.Model(&record.Device{}).
		Where("name = ? AND user_id = ?", device.Name, owner.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.DuplicateDevice(device.Name, device.Username)
	}

	d := gateway.DeviceEntityToDTO(device, &owner.ID)
	rec, err := gateway.DeviceDTOToRecord(r.db, d)
	if err != nil {
		return nil, err
	}
	if err := r.db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.DuplicateDevice(device.Name, device.Username)
		}
		return nil, err
	}

	var saved domain.DeviceEntity
	if err := gateway.EntityFromRecord(rec, &saved, owner.Username); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *gormDeviceRepository) FindByID(id uint) (*domain.DeviceEntity, error) {
	var rec record.Device
	err := r.db.First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return gateway.DeviceRecordToEntity(r.db, &rec)
}

func (r *gormDeviceRepository) FindByUser(username string) ([]*domain.DeviceEntity, error) {
	owner, err := r.resolveOwner(username)
	if err != nil {
		return nil, err
	}

	var recs []record.Device
	if err := r.db.Where("user_id = ?", owner.ID).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}

	devices := make([]*domain.DeviceEntity, 0, len(recs))
	for i := range recs {
		var e domain.DeviceEntity
		if err := gateway.EntityFromRecord(&recs[i], &e, owner.Username); err != nil {
			return nil, err
		}
		devices = append(devices, &e)
	}
	return devices, nil
}

func (r *gormDeviceRepository) FindByNameAndUser(name, username string) (*domain.DeviceEntity, error) {
	var rec record.Device
	err := r.db.
		Joins("JOIN users ON users.id = device.user_id").
		Where("device.name = ? AND users.username = ?", name, username).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var e domain.DeviceEntity
	if err := gateway.EntityFromRecord(&rec, &e, username); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormDeviceRepository) Update(device *domain.DeviceEntity) (*domain.DeviceEntity, error) {
	if device.DeviceID == nil {
		return nil, fmt.Errorf("device %q has no id: %w", device.Name, domain.ErrValidation)
	}

	var rec record.Device
	if err := r.db.First(&rec, *device.DeviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("device with id %d", *device.DeviceID)
		}
		return nil, err
	}

	values := gateway.ValuesFromEntity(device)
	// Store-managed timestamps are never written through an update.
	delete(values, "created_at")
	delete(values, "updated_at")

	if err := r.db.Model(&rec).Updates(values).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.DuplicateDevice(device.Name, device.Username)
		}
		return nil, err
	}
	// Re-read so the returned entity carries the stored updated_at.
	if err := r.db.First(&rec, rec.ID).Error; err != nil {
		return nil, err
	}

	var saved domain.DeviceEntity
	if err := gateway.EntityFromRecord(&rec, &saved, device.Username); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *gormDeviceRepository) DeleteByID(id uint) error {
	return r.db.Delete(&record.Device{}, id).Error
}

func (r *gormDeviceRepository) SetActiveStatus(name, username string, isActive bool) error {
	owner, err := r.resolveOwner(username)
	if err != nil {
		return err
	}

	res := r.db.Model(&record.Device{}).
		Where("name = ? AND user_id = ?", name, owner.ID).
		Update("is_active", isActive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("device %q for user %q", name, username)
	}
	return nil
}

func (r *gormDeviceRepository) resolveOwner(username string) (*record.User, error) {
	var owner record.User
	err := r.db.Where("username = ?", username).First(&owner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("user %q", username)
		}
		return nil, err
	}
	return &owner, nil
}
