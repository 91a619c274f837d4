package oauth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigured(t *testing.T) {
	assert.False(t, NewGoogleService(Config{}).Configured())
	assert.False(t, NewGoogleService(Config{ClientID: "id"}).Configured())
	assert.True(t, NewGoogleService(Config{ClientID: "id", ClientSecret: "secret"}).Configured())
}

func TestAuthURLCarriesState(t *testing.T) {
	svc := NewGoogleService(Config{ClientID: "id", ClientSecret: "secret"})
	url := svc.AuthURL("abc123")
	assert.Contains(t, url, "state=abc123")
	assert.Contains(t, url, "client_id=id")
}

func TestProfileDisplayName(t *testing.T) {
	assert.Equal(t, "Sara", (&Profile{GivenName: "Sara", Name: "Sara Hamdan"}).DisplayName())
	assert.Equal(t, "Sara Hamdan", (&Profile{Name: "Sara Hamdan"}).DisplayName())
}

func TestSuccessRedirectKeepsTokensInFragment(t *testing.T) {
	svc := NewGoogleService(Config{SuccessURL: "https://pos.example.com/auth/success"})
	got := svc.SuccessRedirect("acc-token", "ref-token")

	assert.True(t, strings.HasPrefix(got, "https://pos.example.com/auth/success#"))
	assert.Contains(t, got, "access_token=acc-token")
	assert.Contains(t, got, "refresh_token=ref-token")
	assert.NotContains(t, got, "?access_token")

	assert.Empty(t, NewGoogleService(Config{}).SuccessRedirect("a", "b"))
}

func TestErrorRedirect(t *testing.T) {
	svc := NewGoogleService(Config{ErrorURL: "https://pos.example.com/auth/error"})
	got := svc.ErrorRedirect(errors.New("exchange failed"))
	assert.Contains(t, got, "error=exchange+failed")

	assert.Empty(t, NewGoogleService(Config{}).ErrorRedirect(errors.New("x")))
}
