package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Package oauth signs branch staff in with their Google account. It wraps
// the consent redirect, the code exchange and the profile fetch; account
// creation and role decisions stay in the auth service.

var (
	ErrNotConfigured = errors.New("google sign-in is not configured")
	ErrCodeExchange  = errors.New("authorization code exchange failed")
	ErrProfileFetch  = errors.New("failed to fetch google profile")
)

const profileEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the subset of a Google account used to provision a staff user.
type Profile struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// DisplayName returns the given name, falling back to the full name when
// Google sends no name split.
func (p *Profile) DisplayName() string {
	if p.GivenName != "" {
		return p.GivenName
	}
	return p.Name
}

// Config carries the Google OAuth client credentials plus the back-office
// frontend pages the callback hands the browser back to.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	SuccessURL   string
	ErrorURL     string
}

// GoogleService drives the OAuth consent flow against Google.
type GoogleService struct {
	conf       *oauth2.Config
	successURL string
	errorURL   string
}

// NewGoogleService creates a Google sign-in service.
func NewGoogleService(cfg Config) *GoogleService {
	return &GoogleService{
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		successURL: cfg.SuccessURL,
		errorURL:   cfg.ErrorURL,
	}
}

// Configured reports whether client credentials are present.
func (s *GoogleService) Configured() bool {
	return s.conf.ClientID != "" && s.conf.ClientSecret != ""
}

// AuthURL returns the consent page URL carrying the given state.
func (s *GoogleService) AuthURL(state string) string {
	return s.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// FetchProfile exchanges the authorization code and loads the account
// profile in one step.
func (s *GoogleService) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodeExchange, err)
	}

	resp, err := s.conf.Client(ctx, token).Get(profileEndpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrProfileFetch, resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}
	return &profile, nil
}

// SuccessRedirect builds the frontend URL a completed sign-in lands on,
// or "" when no frontend page is configured. Tokens ride in the fragment
// so they never hit the frontend host's request logs.
func (s *GoogleService) SuccessRedirect(accessToken, refreshToken string) string {
	if s.successURL == "" {
		return ""
	}
	v := url.Values{}
	v.Set("access_token", accessToken)
	v.Set("refresh_token", refreshToken)
	return s.successURL + "#" + v.Encode()
}

// ErrorRedirect builds the frontend URL a failed sign-in lands on, or ""
// when no frontend page is configured.
func (s *GoogleService) ErrorRedirect(err error) string {
	if s.errorURL == "" {
		return ""
	}
	v := url.Values{}
	v.Set("error", err.Error())
	return s.errorURL + "?" + v.Encode()
}
