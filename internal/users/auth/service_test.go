// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcodepapel/api/internal/platform/apperr"
	"github.com/barcodepapel/api/internal/platform/sec"
	"github.com/barcodepapel/api/internal/users/auth"
)

// # Fakes

type fakeUserRepository struct {
	usersByID    map[string]*auth.User
	usersByEmail map[string]*auth.User

	created         []*auth.User
	updated         []*auth.User
	passwordUpdates map[string]string
	loginsRecorded  []string
}

func newFakeUserRepository(seed ...*auth.User) *fakeUserRepository {
	repository := &fakeUserRepository{
		usersByID:       map[string]*auth.User{},
		usersByEmail:    map[string]*auth.User{},
		passwordUpdates: map[string]string{},
	}
	for _, user := range seed {
		repository.usersByID[user.ID] = user
		repository.usersByEmail[user.Email] = user
	}
	return repository
}

func (r *fakeUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := r.usersByID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	if user, ok := r.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (r *fakeUserRepository) Create(_ context.Context, user *auth.User) error {
	r.usersByID[user.ID] = user
	r.usersByEmail[user.Email] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *auth.User) error {
	r.updated = append(r.updated, user)
	return nil
}

func (r *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	r.passwordUpdates[userID] = newHash
	if user, ok := r.usersByID[userID]; ok {
		user.PasswordHash = newHash
	}
	return nil
}

func (r *fakeUserRepository) RecordLogin(_ context.Context, userID string) error {
	r.loginsRecorded = append(r.loginsRecorded, userID)
	return nil
}

func (r *fakeUserRepository) List(_ context.Context, _, _ int) ([]*auth.User, int, error) {
	var all []*auth.User
	for _, user := range r.usersByID {
		all = append(all, user)
	}
	return all, len(all), nil
}

type fakeSessionRepository struct {
	byTokenHash map[string]*auth.Session
	revoked     []string
	revokedAll  []string
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{byTokenHash: map[string]*auth.Session{}}
}

func (r *fakeSessionRepository) Create(_ context.Context, session *auth.Session) error {
	r.byTokenHash[session.TokenHash] = session
	return nil
}

func (r *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	if session, ok := r.byTokenHash[tokenHash]; ok && !session.IsRevoked {
		return session, nil
	}
	return nil, apperr.NotFound("Session")
}

func (r *fakeSessionRepository) Revoke(_ context.Context, sessionID string) error {
	for _, session := range r.byTokenHash {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	r.revoked = append(r.revoked, sessionID)
	return nil
}

func (r *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, session := range r.byTokenHash {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	r.revokedAll = append(r.revokedAll, userID)
	return nil
}

func (r *fakeSessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range r.byTokenHash {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeSessionRepository) DeleteExpired(_ context.Context) error { return nil }

type fakeTokenProvider struct {
	issued int
}

func (p *fakeTokenProvider) GenerateAccessToken(userID, username, role string, _ time.Duration) (string, error) {
	p.issued++
	return "jwt." + userID + "." + role, nil
}

// # Fixtures

func activeUser(t *testing.T) *auth.User {
	t.Helper()
	hash, err := sec.HashPassword("correct-horse")
	require.NoError(t, err)

	return &auth.User{
		ID:           "0192b1a0-0000-7000-8000-000000000001",
		Email:        "admin@barcodepapel.cl",
		PasswordHash: hash,
		Name:         "Carmen",
		LastName:     "Soto",
		Role:         sec.RoleAdmin,
		IsActive:     true,
	}
}

func newFixture(t *testing.T) (*auth.Service, *fakeUserRepository, *fakeSessionRepository, *fakeTokenProvider) {
	t.Helper()
	users := newFakeUserRepository(activeUser(t))
	sessions := newFakeSessionRepository()
	tokens := &fakeTokenProvider{}
	return auth.NewService(users, sessions, tokens), users, sessions, tokens
}

// # Authentication

/*
TestLogin covers credential verification outcomes. Wrong email, wrong
password and suspended accounts all return the same generic message.
*/
func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		suspend  bool
		wantErr  bool
	}{
		{"valid_credentials", "admin@barcodepapel.cl", "correct-horse", false, false},
		{"unknown_email", "ghost@barcodepapel.cl", "correct-horse", false, true},
		{"wrong_password", "admin@barcodepapel.cl", "wrong", false, true},
		{"suspended_account", "admin@barcodepapel.cl", "correct-horse", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, users, _, _ := newFixture(t)
			if tt.suspend {
				users.usersByEmail["admin@barcodepapel.cl"].IsActive = false
			}

			session, err := service.Login(context.Background(), auth.LoginInput{
				Email:    tt.email,
				Password: tt.password,
			})

			if tt.wantErr {
				require.Error(t, err)
				appError := apperr.As(err)
				require.NotNil(t, appError)
				assert.Equal(t, "UNAUTHORIZED", appError.Code)
				assert.Nil(t, session)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, session.AccessToken)
			assert.NotEmpty(t, session.RefreshToken)
			assert.Len(t, users.loginsRecorded, 1)
		})
	}
}

/*
TestRefreshSession_Rotation verifies that a refresh revokes the old session
and that the retired token stops working.
*/
func TestRefreshSession_Rotation(t *testing.T) {
	service, _, sessions, _ := newFixture(t)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@barcodepapel.cl",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := service.RefreshSession(context.Background(), login.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.Len(t, sessions.revoked, 1)

	// Replay of the rotated-out token is rejected.
	_, err = service.RefreshSession(context.Background(), login.RefreshToken, "", "")
	require.Error(t, err)
}

func TestLogout_IsIdempotent(t *testing.T) {
	service, _, sessions, _ := newFixture(t)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@barcodepapel.cl",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))
	assert.Len(t, sessions.revoked, 1)

	// Second logout with the same token is a no-op, not an error.
	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))
	assert.Len(t, sessions.revoked, 1)
}

/*
TestChangePassword verifies the current-password gate and the hash rotation.
*/
func TestChangePassword(t *testing.T) {
	service, users, _, _ := newFixture(t)
	userID := "0192b1a0-0000-7000-8000-000000000001"

	err := service.ChangePassword(context.Background(), userID, "wrong", "new-password", "")
	require.Error(t, err)
	assert.Empty(t, users.passwordUpdates)

	err = service.ChangePassword(context.Background(), userID, "correct-horse", "new-password", "")
	require.NoError(t, err)

	newHash := users.passwordUpdates[userID]
	require.NotEmpty(t, newHash)
	assert.True(t, sec.CheckPasswordHash("new-password", newHash))
	assert.False(t, sec.CheckPasswordHash("correct-horse", newHash))
}

// # Account Administration

func TestCreateUser_DuplicateEmail(t *testing.T) {
	service, _, _, _ := newFixture(t)

	_, err := service.CreateUser(context.Background(), auth.CreateUserInput{
		Email:    "admin@barcodepapel.cl",
		Password: "irrelevant",
		Name:     "Otra",
		Role:     sec.RoleEditor,
	})

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

func TestCreateUser_Success(t *testing.T) {
	service, users, _, _ := newFixture(t)

	created, err := service.CreateUser(context.Background(), auth.CreateUserInput{
		Email:    "editor@barcodepapel.cl",
		Password: "s3cret-Editor",
		Name:     "Pablo",
		LastName: "Vega",
		Role:     sec.RoleEditor,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "s3cret-Editor", created.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret-Editor", created.PasswordHash))
	assert.Len(t, users.created, 1)
}

/*
TestUpdateUser_DeactivationRevokesSessions verifies partial update semantics
and the session purge on deactivation.
*/
func TestUpdateUser_DeactivationRevokesSessions(t *testing.T) {
	service, _, sessions, _ := newFixture(t)
	userID := "0192b1a0-0000-7000-8000-000000000001"

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@barcodepapel.cl",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	inactive := false
	updated, err := service.UpdateUser(context.Background(), userID, auth.UpdateUserInput{
		IsActive: &inactive,
	})
	require.NoError(t, err)

	// Untouched fields keep their values.
	assert.Equal(t, "Carmen", updated.Name)
	assert.Equal(t, sec.RoleAdmin, updated.Role)
	assert.False(t, updated.IsActive)
	assert.Equal(t, []string{userID}, sessions.revokedAll)

	// The revoked session can no longer refresh.
	_, err = service.RefreshSession(context.Background(), login.RefreshToken, "", "")
	require.Error(t, err)
}
