package domain

import (
	"errors"
	"fmt"
)

// Error kinds raised by repositories, gateways and services. Handlers map
// them to HTTP statuses with errors.Is; the core never renders a response.
var (
	ErrValidation         = errors.New("invalid input")
	ErrDuplicate          = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRelationIntegrity  = errors.New("broken relation")
)

// DuplicateDevice reports a (name, owner) uniqueness violation.
func DuplicateDevice(name, username string) error {
	return fmt.Errorf("device %q %w for user %q", name, ErrDuplicate, username)
}

// DuplicateSession reports a session token uniqueness violation.
func DuplicateSession(token string) error {
	return fmt.Errorf("session with token %q %w", token, ErrDuplicate)
}

// DuplicateUser reports a username uniqueness violation.
func DuplicateUser(username string) error {
	return fmt.Errorf("user %q %w", username, ErrDuplicate)
}

// NotFoundf wraps ErrNotFound with a description of the missing resource.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// RelationIntegrityf reports a record whose owner or device relation cannot
// be resolved. Should be unreachable given the cascade rules, but mappers
// must report it rather than substitute blank data.
func RelationIntegrityf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrRelationIntegrity)...)
}
