package mocks

import (
	"context"

	"github.com/giseleterencioa-design/app-daybaby/internal/domain"
	"github.com/giseleterencioa-design/app-daybaby/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TestifyMockAccountService is a mock of store.AccountService for use with testify/mock.
type TestifyMockAccountService struct {
	mock.Mock
}

var _ store.AccountService = (*TestifyMockAccountService)(nil)

// SignUp is a mock implementation of store.AccountService.SignUp
func (m *TestifyMockAccountService) SignUp(ctx context.Context, email, password, name string) (*store.Session, error) {
	args := m.Called(ctx, email, password, name)
	if s, ok := args.Get(0).(*store.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// SignIn is a mock implementation of store.AccountService.SignIn
func (m *TestifyMockAccountService) SignIn(ctx context.Context, email, password string) (*store.Session, error) {
	args := m.Called(ctx, email, password)
	if s, ok := args.Get(0).(*store.Session); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// SignOut is a mock implementation of store.AccountService.SignOut
func (m *TestifyMockAccountService) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// CurrentUser is a mock implementation of store.AccountService.CurrentUser
func (m *TestifyMockAccountService) CurrentUser(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetProfile is a mock implementation of store.AccountService.GetProfile
func (m *TestifyMockAccountService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateProfile is a mock implementation of store.AccountService.UpdateProfile
func (m *TestifyMockAccountService) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	upd store.ProfileUpdate,
) (*domain.Profile, error) {
	args := m.Called(ctx, id, upd)
	if p, ok := args.Get(0).(*domain.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
