package provider

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "harvest/contexts/identity/account-service/domain/errors"
)

func signingKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(publicPEM)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifyLocallyMapsClaims(t *testing.T) {
	key, publicPEM := signingKeyPair(t)
	verifier, err := NewVerifier("", publicPEM, nil)
	require.NoError(t, err)

	token := signToken(t, key, jwt.MapClaims{
		"sub":   "subject-123",
		"email": "person@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{
			"full_name": "Full Name",
			"name":      "Short Name",
		},
		"app_metadata": map[string]any{
			"provider": "google",
		},
	})

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "subject-123", identity.SubjectID)
	assert.Equal(t, "Full Name", identity.Name)
	assert.Equal(t, "person@example.com", identity.Email)
	assert.Equal(t, "google", identity.LoginMethod)
}

func TestVerifyLocallyFallsBackToNameAndProviderList(t *testing.T) {
	key, publicPEM := signingKeyPair(t)
	verifier, err := NewVerifier("", publicPEM, nil)
	require.NoError(t, err)

	token := signToken(t, key, jwt.MapClaims{
		"sub": "subject-456",
		"exp": time.Now().Add(time.Hour).Unix(),
		"user_metadata": map[string]any{
			"name": "Short Name",
		},
		"app_metadata": map[string]any{
			"providers": []string{"email"},
		},
	})

	identity, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "Short Name", identity.Name)
	assert.Equal(t, "email", identity.LoginMethod)
}

func TestVerifyLocallyRejectsBadTokens(t *testing.T) {
	key, publicPEM := signingKeyPair(t)
	verifier, err := NewVerifier("", publicPEM, nil)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	expired := signToken(t, key, jwt.MapClaims{
		"sub": "subject-789",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err = verifier.Verify(context.Background(), expired)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)

	otherKey, _ := signingKeyPair(t)
	forged := signToken(t, otherKey, jwt.MapClaims{
		"sub": "subject-789",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err = verifier.Verify(context.Background(), forged)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestVerifyViaProviderEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "subject-remote",
			"email": "remote@example.com",
			"user_metadata": {"full_name": "Remote User"},
			"app_metadata": {"provider": "github"}
		}`))
	}))
	defer server.Close()

	verifier, err := NewVerifier(server.URL, "", nil)
	require.NoError(t, err)

	identity, err := verifier.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "subject-remote", identity.SubjectID)
	assert.Equal(t, "Remote User", identity.Name)
	assert.Equal(t, "github", identity.LoginMethod)

	_, err = verifier.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestVerifyWithoutConfiguration(t *testing.T) {
	verifier, err := NewVerifier("", "", nil)
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), "any-token")
	assert.ErrorIs(t, err, domainerrors.ErrVerifierNotConfigured)
}
