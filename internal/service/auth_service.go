package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/itsGods/Notes-to-Store/internal/domain"
	"github.com/itsGods/Notes-to-Store/internal/repository"
	"github.com/itsGods/Notes-to-Store/pkg/hash"
	"github.com/itsGods/Notes-to-Store/pkg/jwt"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo          repository.UserRepository
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
	throttle          *loginThrottle
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExp, refreshExp time.Duration, maxAttempts int, window time.Duration) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExp,
		refreshExpiration: refreshExp,
		throttle:          newLoginThrottle(maxAttempts, window),
	}
}

func (s *AuthService) Register(req *domain.RegisterRequest) error {
	emailExists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return fmt.Errorf("failed to check email existence: %w", err)
	}
	if emailExists {
		return &AuthError{Kind: AuthAccountExists, Message: "email already registered"}
	}

	usernameExists, err := s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return fmt.Errorf("failed to check username existence: %w", err)
	}
	if usernameExists {
		return &AuthError{Kind: AuthAccountExists, Message: "username already taken"}
	}

	hashedPassword, err := hash.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *AuthService) Login(req *domain.LoginRequest) (*domain.LoginResponse, error) {
	if !s.throttle.allow(req.Email) {
		return nil, &AuthError{Kind: AuthRateLimited, Message: "too many failed attempts, try again later"}
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		s.throttle.recordFailure(req.Email)
		return nil, &AuthError{Kind: AuthInvalidCredentials, Message: "invalid credentials"}
	}

	if err := hash.Compare(user.Password, req.Password); err != nil {
		s.throttle.recordFailure(req.Email)
		return nil, &AuthError{Kind: AuthInvalidCredentials, Message: "invalid credentials"}
	}

	s.throttle.reset(req.Email)

	accessToken, err := jwt.GenerateToken(user.ID, s.jwtExpiration, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := jwt.GenerateRefreshToken(user.ID, s.refreshExpiration, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	user.Password = ""

	return &domain.LoginResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtExpiration.Seconds()),
	}, nil
}

func (s *AuthService) RefreshToken(req *domain.RefreshTokenRequest) (*domain.TokenResponse, error) {
	claims, err := jwt.ValidateToken(req.RefreshToken, s.jwtSecret)
	if err != nil {
		return nil, &AuthError{Kind: AuthInvalidToken, Message: "invalid refresh token", Err: err}
	}

	accessToken, err := jwt.GenerateToken(claims.UserID, s.jwtExpiration, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.TokenResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(s.jwtExpiration.Seconds()),
	}, nil
}

// loginThrottle counts failed logins per email inside a sliding window.
// A zero or negative maxAttempts disables throttling.
type loginThrottle struct {
	maxAttempts int
	window      time.Duration

	mu       sync.Mutex
	failures map[string]*failureRecord
}

type failureRecord struct {
	count int
	since time.Time
}

func newLoginThrottle(maxAttempts int, window time.Duration) *loginThrottle {
	return &loginThrottle{
		maxAttempts: maxAttempts,
		window:      window,
		failures:    make(map[string]*failureRecord),
	}
}

func (t *loginThrottle) allow(email string) bool {
	if t.maxAttempts <= 0 {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.failures[email]
	if !ok {
		return true
	}

	if time.Since(rec.since) > t.window {
		delete(t.failures, email)
		return true
	}

	return rec.count < t.maxAttempts
}

func (t *loginThrottle) recordFailure(email string) {
	if t.maxAttempts <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.failures[email]
	if !ok || time.Since(rec.since) > t.window {
		t.failures[email] = &failureRecord{count: 1, since: time.Now()}
		return
	}

	rec.count++
}

func (t *loginThrottle) reset(email string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.failures, email)
}
