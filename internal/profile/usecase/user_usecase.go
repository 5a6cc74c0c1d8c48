package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"profile-backend/internal/profile/domain"
	"profile-backend/internal/profile/dto"
	"profile-backend/internal/profile/repository"
	"profile-backend/pkg/config"
)

// userService implements UserService.
type userService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	config      *config.Config
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		config:      cfg,
	}
}

func (u *userService) CreateUser(username, email, password string) (*domain.UserEntity, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", domain.ErrValidation)
	}
	return u.userRepo.Add(&domain.UserEntity{
		Username: username,
		Email:    email,
		Password: password,
	})
}

func (u *userService) GetUser(username string) (*domain.UserEntity, error) {
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFoundf("user %q", username)
	}
	return user, nil
}

func (u *userService) Login(req *dto.LoginRequest, deviceName, ipAddress, userAgent *string) (*dto.TokenResponse, error) {
	user, err := u.userRepo.Authenticate(req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	// Each login opens a session; the token carries its session id so the
	// session can be deactivated independently of token expiry.
	sessionToken := uuid.New().String()
	if _, err := u.sessionRepo.Add(&domain.SessionEntity{
		SessionToken: sessionToken,
		Username:     user.Username,
		DeviceName:   deviceName,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
		IsActive:     true,
	}); err != nil {
		return nil, err
	}

	signed, err := u.signToken(user.Username, sessionToken)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: signed, User: user}, nil
}

func (u *userService) signToken(username, sessionToken string) (string, error) {
	claims := jwt.MapClaims{
		"username":      username,
		"session_token": sessionToken,
		"exp":           time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":           time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *userService) ValidateToken(tokenString string) (*domain.UserEntity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrInvalidCredentials)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrInvalidCredentials)
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrInvalidCredentials)
	}

	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("unknown user: %w", domain.ErrInvalidCredentials)
	}
	return user, nil
}

func (u *userService) ChangePassword(username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", domain.ErrValidation)
	}
	return u.userRepo.ChangePassword(username, newPassword)
}

func (u *userService) DeleteUser(username string) error {
	user, err := u.userRepo.FindByUsername(username)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NotFoundf("user %q", username)
	}
	return u.userRepo.Delete(username)
}
