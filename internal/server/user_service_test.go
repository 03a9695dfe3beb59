package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/types"
)

// fakeUserStore is an in-memory UserStore for unit tests.
type fakeUserStore struct {
	users map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         db.RoleCandidate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.users[userID], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, userID uuid.UUID, role string) (*db.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	u.Role = role
	u.UpdatedAt = time.Now()
	return u, nil
}

func newTestUserService() (*UserService, *fakeUserStore) {
	store := newFakeUserStore()
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	return NewUserService(store, passwordConfig), store
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, db.RoleCandidate, user.Role, "new accounts should start as candidates")

	loggedIn, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &types.RegisterRequest{
		Name:     "Other Jane",
		Email:    "jane@example.com",
		Password: "password456",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_UpdateRole(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRole(ctx, user.ID, db.RoleRecruiter)
	require.NoError(t, err)
	assert.Equal(t, db.RoleRecruiter, updated.Role)

	// Switching back is allowed
	updated, err = svc.UpdateRole(ctx, user.ID, db.RoleCandidate)
	require.NoError(t, err)
	assert.Equal(t, db.RoleCandidate, updated.Role)
}

func TestUserService_UpdateRole_Invalid(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.UpdateRole(context.Background(), uuid.New(), "admin")
	require.Error(t, err)
	assert.IsType(t, &ErrValidation{}, err)
}

func TestUserService_UpdateRole_UnknownUser(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.UpdateRole(context.Background(), uuid.New(), db.RoleRecruiter)
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}

func TestUserService_GetProfile_UnknownUser(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}
