package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/interview-console/internal/models"
	"github.com/noah-isme/interview-console/internal/upstream"
	appErrors "github.com/noah-isme/interview-console/pkg/errors"
)

type authAPI interface {
	StudentLogin(ctx context.Context, req upstream.StudentLoginRequest) (*models.StudentSession, error)
	AdminLogin(ctx context.Context, req upstream.AdminLoginRequest) (*upstream.AdminLoginResponse, error)
	AdminLogout(ctx context.Context, token string) error
	AdminProfile(ctx context.Context, token string) (*models.AdminProfile, error)
}

// LoginRequest carries the login form of either audience.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthConfig tunes console token issuance.
type AuthConfig struct {
	JWTSecret     string
	StudentExpiry time.Duration
	AdminExpiry   time.Duration
}

// AuthService performs logins against the platform API and issues the
// console-signed session tokens stored in browser cookies. Credential
// verification itself is entirely upstream.
type AuthService struct {
	api       authAPI
	validator *validator.Validate
	logger    *zap.Logger
	secret    []byte

	studentExpiry time.Duration
	adminExpiry   time.Duration
}

// NewAuthService constructs the auth service.
func NewAuthService(api authAPI, cfg AuthConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.StudentExpiry <= 0 {
		cfg.StudentExpiry = 30 * 24 * time.Hour
	}
	if cfg.AdminExpiry <= 0 {
		cfg.AdminExpiry = 12 * time.Hour
	}
	return &AuthService{
		api:           api,
		validator:     validate,
		logger:        logger,
		secret:        []byte(cfg.JWTSecret),
		studentExpiry: cfg.StudentExpiry,
		adminExpiry:   cfg.AdminExpiry,
	}
}

// StudentLogin logs a student in and returns the session object plus the
// console token to persist in the durable cookie.
func (s *AuthService) StudentLogin(ctx context.Context, req LoginRequest) (*models.StudentSession, string, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "email and password are required")
	}
	session, err := s.api.StudentLogin(ctx, upstream.StudentLoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, "", err
	}
	token, err := s.issueToken(session.StudentID, models.RoleStudent, session.Token, s.studentExpiry)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("student login", zap.String("student_id", session.StudentID))
	return session, token, nil
}

// AdminLogin logs an admin in and returns the profile plus the console token
// to persist in the session cookie.
func (s *AuthService) AdminLogin(ctx context.Context, req LoginRequest) (*models.AdminProfile, string, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "email and password are required")
	}
	resp, err := s.api.AdminLogin(ctx, upstream.AdminLoginRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, "", err
	}
	subject := ""
	if resp.Profile != nil {
		subject = resp.Profile.ID
	}
	token, err := s.issueToken(subject, models.RoleAdmin, resp.Token, s.adminExpiry)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("admin login", zap.String("admin_id", subject))
	return resp.Profile, token, nil
}

// AdminLogout invalidates the upstream bearer token.
func (s *AuthService) AdminLogout(ctx context.Context, upstreamToken string) error {
	return s.api.AdminLogout(ctx, upstreamToken)
}

// AdminProfile fetches the authenticated admin's profile.
func (s *AuthService) AdminProfile(ctx context.Context, upstreamToken string) (*models.AdminProfile, error) {
	return s.api.AdminProfile(ctx, upstreamToken)
}

// ValidateToken parses and verifies a console session token.
func (s *AuthService) ValidateToken(token string) (*models.ConsoleClaims, error) {
	claims := &models.ConsoleClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session expired")
	}
	return claims, nil
}

func (s *AuthService) issueToken(subject string, role models.Role, upstreamToken string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := models.ConsoleClaims{
		Role:          role,
		UpstreamToken: upstreamToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue session token")
	}
	return token, nil
}
