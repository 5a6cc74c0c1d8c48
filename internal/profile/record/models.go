// Package record holds the persisted-record models managed by the
// relational store. These are the storage-facing shapes; domain code never
// touches them directly, only through the gateways.
package record

import "time"

// User is the account row. Passwords are stored bcrypt-hashed only.
type User struct {
	ID           uint       `gorm:"primaryKey"`
	Username     string     `gorm:"size:150;uniqueIndex;not null"`
	Email        string     `gorm:"size:255"`
	PasswordHash string     `gorm:"size:255"`
	IsActive     bool       `gorm:"default:true"`
	DateJoined   time.Time  `gorm:"autoCreateTime"`
	LastLogin    *time.Time
}

func (User) TableName() string { return "users" }

// Device rows are owned by exactly one user and removed with it. The
// composite unique index backs the (name, owner) invariant at the store
// level, alongside the service-level pre-check.
type Device struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"size:255;not null;uniqueIndex:idx_device_name_user"`
	DeviceType string    `gorm:"size:255;not null"`
	Platform   string    `gorm:"size:255;not null"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_device_name_user"`
	User       User      `gorm:"constraint:OnDelete:CASCADE"`
	IsActive   bool      `gorm:"default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Device) TableName() string { return "device" }

// Session rows cascade with their user but outlive their device: the device
// reference is nullified when the device row goes away. LastActivity is
// written explicitly by the repository, never by a store trigger, so that
// unrelated updates cannot refresh it.
type Session struct {
	ID           uint    `gorm:"primaryKey"`
	SessionToken string  `gorm:"size:255;uniqueIndex;not null"`
	UserID       uint    `gorm:"not null;index"`
	User         User    `gorm:"constraint:OnDelete:CASCADE"`
	DeviceID     *uint   `gorm:"index"`
	Device       *Device `gorm:"constraint:OnDelete:SET NULL"`
	IPAddress    *string `gorm:"size:100"`
	UserAgent    *string `gorm:"size:100"`
	IsActive     bool    `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	LastActivity *time.Time
}

func (Session) TableName() string { return "session" }
