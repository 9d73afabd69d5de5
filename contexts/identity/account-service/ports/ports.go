package ports

import (
	"context"
	"time"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// Identity is the verified claim set of a hosted-auth access token.
type Identity struct {
	SubjectID   string
	Name        string
	Email       string
	LoginMethod string
}

// TokenVerifier validates an access token with the hosted auth provider
// and returns the identity it asserts.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// User is a stored application user row.
type User struct {
	ID           int64
	OpenID       string
	Name         string
	Email        string
	LoginMethod  string
	Role         string
	LastSignedIn time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpsert carries the fields refreshed on every sign-in. An empty Role
// preserves the stored role on update and defaults to "user" on insert.
type UserUpsert struct {
	OpenID       string
	Name         string
	Email        string
	LoginMethod  string
	Role         string
	LastSignedIn time.Time
}

// Repository persists application users keyed by their provider subject.
type Repository interface {
	UpsertUser(ctx context.Context, input UserUpsert) (User, error)
	GetUserByOpenID(ctx context.Context, openID string) (User, bool, error)
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
