package usecase

import (
	"fmt"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/repository"
)

// sessionService implements SessionService.
type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) CreateSession(token, username string, deviceName, ipAddress, userAgent *string) (*domain.SessionEntity, error) {
	if token == "" {
		return nil, fmt.Errorf("session token is required: %w", domain.ErrValidation)
	}
	return s.sessionRepo.Add(&domain.SessionEntity{
		SessionToken: token,
		Username:     username,
		DeviceName:   deviceName,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		IsActive:     true,
	})
}

func (s *sessionService) GetSession(token string) (*domain.SessionEntity, error) {
	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.NotFoundf("session with token %q", token)
	}
	return session, nil
}

func (s *sessionService) GetUserSessions(username string, activeOnly bool) ([]*domain.SessionEntity, error) {
	if activeOnly {
		return s.sessionRepo.FindActiveByUser(username)
	}
	return s.sessionRepo.FindByUser(username)
}

func (s *sessionService) UpdateSessionActivity(token string) error {
	return s.sessionRepo.UpdateLastActivity(token)
}

func (s *sessionService) DeactivateSession(token string) error {
	return s.sessionRepo.Deactivate(token)
}

func (s *sessionService) LogoutUser(username string) error {
	return s.sessionRepo.DeactivateUserSessions(username)
}

func (s *sessionService) CleanupInactiveSessions() (int64, error) {
	return s.sessionRepo.DeleteInactiveSessions()
}
