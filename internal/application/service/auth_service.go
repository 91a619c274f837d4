package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sofrahq/sofra-api/internal/domain/entity"
	"github.com/sofrahq/sofra-api/internal/domain/repository"
	"github.com/sofrahq/sofra-api/pkg/apperror"
	"github.com/sofrahq/sofra-api/pkg/oauth"
	"github.com/sofrahq/sofra-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo    repository.UserRepository
	jwtManager  *utils.JWTManager
	googleOAuth *oauth.GoogleService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	googleOAuth *oauth.GoogleService,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		jwtManager:  jwtManager,
		googleOAuth: googleOAuth,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	BranchID  *uuid.UUID
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	// Check if email already exists
	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	// Hash password
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	// Generate username from email (part before @)
	username := input.Email
	if idx := strings.Index(input.Email, "@"); idx > 0 {
		username = input.Email[:idx]
	}

	role := input.Role
	if role == "" {
		role = entity.RoleCashier
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  username,
		Email:     input.Email,
		Password:  hashedPassword,
		Role:      role,
		Provider:  "local",
		BranchID:  input.BranchID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the user's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return errors.New("current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// GoogleAuthURL returns the Google consent page URL for the given state
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.googleOAuth.Configured() {
		return "", oauth.ErrNotConfigured
	}
	return s.googleOAuth.AuthURL(state), nil
}

// GoogleLogin exchanges an OAuth code and logs the user in, creating the
// account on first sign-in. Google accounts default to the cashier role.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	if !s.googleOAuth.Configured() {
		return nil, oauth.ErrNotConfigured
	}

	profile, err := s.googleOAuth.FetchProfile(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByProvider(ctx, "google", profile.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Link to an existing local account with the same email
		user, err = s.userRepo.GetByEmail(ctx, profile.Email)
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		providerID := profile.ID
		user = &entity.User{
			FirstName:  profile.DisplayName(),
			LastName:   profile.FamilyName,
			Email:      profile.Email,
			Role:       entity.RoleCashier,
			Provider:   "google",
			ProviderID: &providerID,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if user.ProviderID == nil {
		providerID := profile.ID
		user.Provider = "google"
		user.ProviderID = &providerID
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(user)
}

// GoogleSuccessRedirect builds the frontend landing URL for a completed
// Google sign-in, or "" when no frontend page is configured
func (s *AuthService) GoogleSuccessRedirect(out *LoginOutput) string {
	return s.googleOAuth.SuccessRedirect(out.AccessToken, out.RefreshToken)
}

// GoogleErrorRedirect builds the frontend landing URL for a failed Google
// sign-in, or "" when no frontend page is configured
func (s *AuthService) GoogleErrorRedirect(err error) string {
	return s.googleOAuth.ErrorRedirect(err)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Role, user.BranchID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
