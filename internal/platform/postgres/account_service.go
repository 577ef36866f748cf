package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/platform/logger"
	"github.com/giseleterencioa-design/app-daybaby/internal/service/auth"
	"github.com/giseleterencioa-design/app-daybaby/internal/store"
	"github.com/google/uuid"
)

// AccountService implements store.AccountService. It remembers the session
// of the last successful sign-in or sign-up until SignOut.
type AccountService struct {
	db     *sql.DB
	tokens *auth.TokenService
	hasher *auth.PasswordHasher
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	current *store.Session
}

var _ store.AccountService = (*AccountService)(nil)

// NewAccountService creates an account service on db.
func NewAccountService(
	db *sql.DB,
	tokens *auth.TokenService,
	hasher *auth.PasswordHasher,
	logger *slog.Logger,
) *AccountService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountService{
		db:     db,
		tokens: tokens,
		hasher: hasher,
		logger: logger.With(slog.String("component", "account_service")),
		now:    time.Now,
	}
}

// SignUp implements store.AccountService. The profile and its default
// settings row are written in one transaction.
func (s *AccountService) SignUp(ctx context.Context, email, password, name string) (*store.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	profile, err := domain.NewProfile(strings.ToLower(email), password, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	profile.HashedPassword, err = s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	profile.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO profiles (id, email, name, hashed_password, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			profile.ID, profile.Email, profile.Name, profile.HashedPassword, profile.CreatedAt, profile.UpdatedAt)
		if err != nil {
			return mapUniqueViolation(err, store.ErrEmailExists)
		}

		return NewPostgresJournalStore(tx, s.logger).SaveSettings(ctx, profile.ID, store.Settings{
			Theme:        domain.ThemeLight,
			ColorPalette: domain.PalettePastel,
		})
	})
	if err != nil {
		log.Warn("sign-up failed", slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("profile created", slog.String("user_id", profile.ID.String()))
	return s.startSession(ctx, profile)
}

// SignIn implements store.AccountService.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*store.Session, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	profile, err := s.getProfile(ctx, `WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, store.ErrProfileNotFound) {
		log.Debug("sign-in rejected: unknown email")
		return nil, store.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(profile.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("sign-in rejected: wrong password", slog.String("user_id", profile.ID.String()))
			return nil, store.ErrUnauthorized
		}
		return nil, err
	}

	return s.startSession(ctx, profile)
}

func (s *AccountService) startSession(ctx context.Context, profile *domain.Profile) (*store.Session, error) {
	token, expires, err := s.tokens.Issue(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	session := &store.Session{Profile: profile, Token: token, ExpiresAt: expires}
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
	return session, nil
}

// SignOut implements store.AccountService.
func (s *AccountService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		logger.FromContextOrDefault(ctx, s.logger).Info("signed out",
			slog.String("user_id", s.current.Profile.ID.String()))
	}
	s.current = nil
	return nil
}

// CurrentUser implements store.AccountService. An expired session token
// signs the caregiver out.
func (s *AccountService) CurrentUser(ctx context.Context) (*domain.Profile, error) {
	s.mu.Lock()
	session := s.current
	s.mu.Unlock()
	if session == nil {
		return nil, store.ErrUnauthorized
	}

	claims, err := s.tokens.Validate(ctx, session.Token)
	if err != nil {
		_ = s.SignOut(ctx)
		return nil, fmt.Errorf("%w: %v", store.ErrUnauthorized, err)
	}
	return s.GetProfile(ctx, claims.UserID)
}

// GetProfile implements store.AccountService.
func (s *AccountService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.getProfile(ctx, `WHERE id = $1`, id)
}

func (s *AccountService) getProfile(ctx context.Context, where string, arg any) (*domain.Profile, error) {
	var p domain.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, name, hashed_password, created_at, updated_at
		FROM profiles `+where, arg).
		Scan(&p.ID, &p.Email, &p.Name, &p.HashedPassword, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrProfileNotFound
	}
	if err != nil {
		return nil, MapError(err)
	}
	return &p, nil
}

// UpdateProfile implements store.AccountService.
func (s *AccountService) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	upd store.ProfileUpdate,
) (*domain.Profile, error) {
	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		profile.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		profile.Email = strings.ToLower(strings.TrimSpace(*upd.Email))
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}
	profile.UpdatedAt = s.now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE profiles SET email = $2, name = $3, updated_at = $4
		WHERE id = $1`,
		profile.ID, profile.Email, profile.Name, profile.UpdatedAt)
	if err != nil {
		return nil, mapUniqueViolation(err, store.ErrEmailExists)
	}
	if err := CheckRowsAffected(result, store.ErrProfileNotFound); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.current != nil && s.current.Profile.ID == id {
		s.current.Profile = profile
	}
	s.mu.Unlock()
	return profile, nil
}
