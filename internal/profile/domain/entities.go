package domain

import "time"

// UserEntity is the in-memory representation of an account. It has no
// identity until persisted; the password travels in plaintext and is hashed
// at the persistence boundary, never stored on the entity after a read.
type UserEntity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// DeviceEntity references its owner by username, not id. DeviceID and the
// timestamps are assigned by the store and are nil on an unsaved entity.
type DeviceEntity struct {
	Name       string     `json:"name"`
	DeviceType string     `json:"device_type"`
	Platform   string     `json:"platform"`
	Username   string     `json:"username"`
	IsActive   bool       `json:"is_active"`
	DeviceID   *uint      `json:"device_id,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// SessionEntity references its owner by username and its device, if any, by
// name. LastActivity is refreshed by the activity update operation.
type SessionEntity struct {
	SessionToken string     `json:"session_token"`
	Username     string     `json:"username"`
	DeviceName   *string    `json:"device_name,omitempty"`
	IPAddress    *string    `json:"ip_address,omitempty"`
	UserAgent    *string    `json:"user_agent,omitempty"`
	IsActive     bool       `json:"is_active"`
	SessionID    *uint      `json:"session_id,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}
