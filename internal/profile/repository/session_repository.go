package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/gateway"
	"profile-backend/internal/profile/record"
)

// gormSessionRepository implements SessionRepository. Token uniqueness is
// guaranteed by the store's unique index; a violation surfaces as a
// descriptive duplicate error.
type gormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new GORM-backed SessionRepository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &gormSessionRepository{db: db}
}

func (r *gormSessionRepository) Add(session *domain.SessionEntity) (*domain.SessionEntity, error) {
	owner, err := r.resolveOwner(session.Username)
	if err != nil {
		return nil, err
	}

	var deviceID *uint
	if session.DeviceName != nil {
		var device record.Device
		err := r.db.Where("name = ? AND user_id = ?", *session.DeviceName, owner.ID).First(&device).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.NotFoundf("device %q for user %q", *session.DeviceName, session.Username)
			}
			return nil, err
		}
		deviceID = &device.ID
	}

	d := gateway.SessionEntityToDTO(session, &owner.ID, deviceID)
	rec, err := gateway.SessionDTOToRecord(r.db, d)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	rec.LastActivity = &now
	if err := r.db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.DuplicateSession(session.SessionToken)
		}
		return nil, err
	}

	return gateway.SessionRecordToEntity(r.db, rec)
}

func (r *gormSessionRepository) FindByToken(token string) (*domain.SessionEntity, error) {
	var rec record.Session
	err := r.db.Where("session_token = ?", token).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return gateway.SessionRecordToEntity(r.db, &rec)
}

func (r *gormSessionRepository) FindByUser(username string) ([]*domain.SessionEntity, error) {
	return r.findForUser(username, false)
}

func (r *gormSessionRepository) FindActiveByUser(username string) ([]*domain.SessionEntity, error) {
	return r.findForUser(username, true)
}

func (r *gormSessionRepository) findForUser(username string, activeOnly bool) ([]*domain.SessionEntity, error) {
	owner, err := r.resolveOwner(username)
	if err != nil {
		return nil, err
	}

	q := r.db.Where("user_id = ?", owner.ID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var recs []record.Session
	if err := q.Order("last_activity DESC").Find(&recs).Error; err != nil {
		return nil, err
	}

	sessions := make([]*domain.SessionEntity, 0, len(recs))
	for i := range recs {
		e, err := gateway.SessionRecordToEntity(r.db, &recs[i])
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, e)
	}
	return sessions, nil
}

func (r *gormSessionRepository) UpdateLastActivity(token string) error {
	res := r.db.Model(&record.Session{}).
		Where("session_token = ?", token).
		Update("last_activity", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("session with token %q", token)
	}
	return nil
}

func (r *gormSessionRepository) Deactivate(token string) error {
	res := r.db.Model(&record.Session{}).
		Where("session_token = ?", token).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundf("session with token %q", token)
	}
	return nil
}

func (r *gormSessionRepository) DeactivateUserSessions(username string) error {
	owner, err := r.resolveOwner(username)
	if err != nil {
		return err
	}
	return r.db.Model(&record.Session{}).
		Where("user_id = ?", owner.ID).
		Update("is_active", false).Error
}

func (r *gormSessionRepository) Delete(token string) error {
	return r.db.Where("session_token = ?", token).Delete(&record.Session{}).Error
}

func (r *gormSessionRepository) DeleteInactiveSessions() (int64, error) {
	res := r.db.Where("is_active = ?", false).Delete(&record.Session{})
	return res.RowsAffected, res.Error
}

func (r *gormSessionRepository) resolveOwner(username string) (*record.User, error) {
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
