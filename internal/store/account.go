package store

import (
	"context"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/google/uuid"
)

// Session is a signed-in caregiver.
type Session struct {
	Profile   *domain.Profile
	Token     string
	ExpiresAt time.Time
}

// ProfileUpdate names the profile fields to change. Nil fields are left as
// they are.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// AccountService signs caregivers in and out and manages their profile.
type AccountService interface {
	// SignUp creates a profile with default settings and signs it in.
	// Returns ErrEmailExists if the email is taken.
	SignUp(ctx context.Context, email, password, name string) (*Session, error)

	// SignIn checks the credentials and starts a session.
	// Returns ErrUnauthorized for an unknown email or a wrong password.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// SignOut ends the current session. It is safe to call when nobody is
	// signed in.
	SignOut(ctx context.Context) error

	// CurrentUser returns the signed-in profile, or ErrUnauthorized.
	CurrentUser(ctx context.Context) (*domain.Profile, error)

	// GetProfile returns a profile by ID, or ErrProfileNotFound.
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)

	// UpdateProfile applies upd and returns the stored profile.
	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*domain.Profile, error)
}
