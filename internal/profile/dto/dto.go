// Package dto holds the flat transfer shapes bridging entities and
// persisted records. DTOs reference owners by numeric surrogate keys; a set
// ID means "update the existing record", a nil ID means "create a new one".
package dto

import "time"

type UserDTO struct {
	ID         *uint      `json:"id,omitempty"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	Password   string     `json:"-"`
	IsActive   bool       `json:"is_active"`
	DateJoined *time.Time `json:"date_joined,omitempty"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

type DeviceDTO struct {
	ID         *uint      `json:"id,omitempty"`
	Name       string     `json:"name"`
	DeviceType string     `json:"device_type"`
	Platform   string     `json:"platform"`
	UserID     *uint      `json:"user_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type SessionDTO struct {
	ID           *uint      `json:"id,omitempty"`
	SessionToken string     `json:"session_token"`
	UserID       *uint      `json:"user_id,omitempty"`
	DeviceID     *uint      `json:"device_id,omitempty"`
	IPAddress    *string    `json:"ip_address,omitempty"`
	UserAgent    *string    `json:"user_agent,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
}
