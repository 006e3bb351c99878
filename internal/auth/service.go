package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"translationflow/internal/database/models"
	apperrors "translationflow/internal/errors"
	"translationflow/internal/logger"
	"translationflow/internal/repository"
	"translationflow/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService signs users up, logs them in and issues JWT access tokens
type AuthService struct {
	config    *AuthConfig
	users     repository.UserRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID string `json:"user_id" example:"5b7f1c9e-2d4a-4c1b-9f3e-8a6d2e1f0b7c"`
	Email  string `json:"email" example:"translator@example.com"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// SignupRequest represents the request to create an account
type SignupRequest struct {
	Email       string `json:"email" validate:"required,email,max=254" example:"translator@example.com"`
	Password    string `json:"password" validate:"required,min=8,max=72" example:"correct horse battery"`
	DisplayName string `json:"display_name" validate:"max=100" example:"Ana"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"translator@example.com"`
	Password string `json:"password" validate:"required" example:"correct horse battery"`
}

// UpdateProfileRequest represents a partial edit of the caller's account.
// Setting a new password requires the current one.
type UpdateProfileRequest struct {
	DisplayName     *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100" example:"Ana Lopes"`
	CurrentPassword string  `json:"current_password,omitempty" validate:"required_with=NewPassword"`
	NewPassword     string  `json:"new_password,omitempty" validate:"omitempty,min=8,max=72"`
}

// UserProfile represents the public view of a user
type UserProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

// AuthResponse represents a successful signup or login
type AuthResponse struct {
	AccessToken string      `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string      `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64       `json:"expiresIn" example:"86400"`
	Profile     UserProfile `json:"profile"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, validator *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:    config,
		users:     users,
		validator: validator,
		now:       time.Now,
	}, nil
}

// Signup creates an account and logs it in
func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if err := service.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = strings.SplitN(req.Email, "@", 2)[0]
	}

	user := &models.User{
		Email:        req.Email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("user signed up")
	return s.issue(user)
}

// Login checks the credentials and issues a new access token. Unknown
// emails and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := service.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Me returns the profile of an authenticated user
func (s *AuthService) Me(ctx context.Context, userID string) (*UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	profile := toUserProfile(user)
	return &profile, nil
}

// UpdateProfile applies the fields present in req to the caller's account
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*UserProfile, error) {
	if req.DisplayName != nil {
		displayName := strings.TrimSpace(*req.DisplayName)
		req.DisplayName = &displayName
	}
	if err := service.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id":          user.ID,
		"password_changed": req.NewPassword != "",
	}).Info("user profile updated")
	profile := toUserProfile(user)
	return &profile, nil
}

// GenerateJWT creates a signed access token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResponse, error) {
	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL / time.Second),
		Profile:     toUserProfile(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
	}
}
