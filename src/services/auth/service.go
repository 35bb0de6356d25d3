package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// RateLimitedError is returned while an email is in its login cooldown.
type RateLimitedError struct {
	Remaining time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("too many login attempts, retry in %s", e.Remaining.Round(time.Second))
}

// EventRecorder stores login/signup events as submissions.
type EventRecorder interface {
	RecordAuthEvent(ctx context.Context, kind models.SubmissionType, fields map[string]any) (models.Submission, error)
}

// Session is the authenticated identity carried through a request.
type Session struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	Session   Session
}

type Config struct {
	AdminEmail    string
	AdminPassword string
}

// Service authenticates against the configured admin account and users registered
// through signup. Users live in memory for the life of the process.
type Service struct {
	tokens   *utils.TokenIssuer
	limiter  AttemptLimiter
	recorder EventRecorder
	log      *zap.Logger
	now      func() time.Time

	mu     sync.RWMutex
	nextID int64
	users  map[string]*models.User // key: lower-case email
}

func NewService(cfg Config, tokens *utils.TokenIssuer, limiter AttemptLimiter, recorder EventRecorder, log *zap.Logger) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Service{
		tokens:   tokens,
		limiter:  limiter,
		recorder: recorder,
		log:      log,
		now:      time.Now,
		nextID:   1,
		users:    make(map[string]*models.User),
	}
	s.insert(&models.User{
		Username:     "admin",
		Email:        normalizeEmail(cfg.AdminEmail),
		Name:         "Admin",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	})
	return s, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// insert assigns an id and stores u. Caller holds mu or is the constructor.
func (s *Service) insert(u *models.User) {
	u.ID = s.nextID
	s.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}
	s.users[u.Email] = u
}

func (s *Service) Login(ctx context.Context, req models.LoginRequest) (LoginResult, error) {
	email := normalizeEmail(req.Email)

	remaining, err := s.limiter.Remaining(ctx, email)
	if err != nil {
		s.log.Warn("login limiter unavailable", zap.Error(err))
	} else if remaining > 0 {
		return LoginResult{}, &RateLimitedError{Remaining: remaining}
	}

	s.mu.RLock()
	user, ok := s.users[email]
	s.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		if err := s.limiter.Fail(ctx, email); err != nil {
			s.log.Warn("record failed login", zap.Error(err))
		}
		s.log.Info("login failed", zap.String("email", email))
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn("reset login attempts", zap.Error(err))
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate token: %w", err)
	}

	if _, err := s.recorder.RecordAuthEvent(ctx, models.SubmissionLogin, map[string]any{
		"username": user.Username,
		"email":    user.Email,
		"name":     user.Name,
	}); err != nil {
		return LoginResult{}, err
	}

	s.log.Info("login succeeded", zap.Int64("userId", user.ID), zap.String("role", user.Role))
	return LoginResult{
		Token:     token,
		ExpiresIn: s.tokens.TTL(),
		Session:   sessionOf(user),
	}, nil
}

func (s *Service) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	email := normalizeEmail(req.Email)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     email,
		Email:        email,
		Name:         strings.TrimSpace(req.FirstName + " " + req.LastName),
		Role:         models.RoleClient,
		PasswordHash: string(hash),
	}

	s.mu.Lock()
	if _, exists := s.users[email]; exists {
		s.mu.Unlock()
		return models.User{}, ErrEmailTaken
	}
	s.insert(user)
	created := *user
	s.mu.Unlock()

	if _, err := s.recorder.RecordAuthEvent(ctx, models.SubmissionSignup, map[string]any{
		"username":  created.Username,
		"email":     created.Email,
		"name":      created.Name,
		"firstName": req.FirstName,
		"lastName":  req.LastName,
	}); err != nil {
		// ยกเลิกการสมัคร ให้ผู้ใช้ลองใหม่ได้โดยไม่ติด 409
		s.mu.Lock()
		delete(s.users, email)
		s.mu.Unlock()
		return models.User{}, err
	}

	s.log.Info("user signed up", zap.Int64("userId", created.ID))
	return created, nil
}

// SessionFromToken validates a bearer token and returns its session.
func (s *Service) SessionFromToken(token string) (Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return Session{}, err
	}
	return Session{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
		Role:   claims.Role,
	}, nil
}

func sessionOf(u *models.User) Session {
	return Session{UserID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
