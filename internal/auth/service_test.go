package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-differently/cs-25-2-team2/internal/storage"
)

func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	return srv.URL
}

func newMockBackedService(t *testing.T) (*Service, storage.KV) {
	t.Helper()
	kv := storage.NewMemory()
	return NewService(unreachableURL(t), time.Second, NewKeys("test-secret"), kv), kv
}

func TestLoginFallsBackToMockUsers(t *testing.T) {
	svc, _ := newMockBackedService(t)

	session, err := svc.Login(context.Background(), Credentials{Username: "customer", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", session.Name)
	assert.Equal(t, RoleCustomer, session.Role)
	assert.NotEmpty(t, session.Token)

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "customer", user.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newMockBackedService(t)

	_, err := svc.Login(context.Background(), Credentials{Username: "customer", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, svc.IsLoggedIn())
}

func TestLoginPrefersBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Session{
			User:  User{ID: 42, Username: "remote", Name: "Remote User", Role: RoleCustomer},
			Token: "backend-token",
		})
	}))
	defer srv.Close()

	kv := storage.NewMemory()
	svc := NewService(srv.URL, time.Second, NewKeys("test-secret"), kv)

	session, err := svc.Login(context.Background(), Credentials{Username: "remote", Password: "whatever"})
	require.NoError(t, err)
	assert.Equal(t, 42, session.ID)
	assert.Equal(t, "backend-token", session.Token)
}

func TestLogoutDropsSession(t *testing.T) {
	svc, _ := newMockBackedService(t)
	_, err := svc.Login(context.Background(), Credentials{Username: "chef", Password: "password"})
	require.NoError(t, err)
	require.True(t, svc.IsLoggedIn())

	require.NoError(t, svc.Logout())
	assert.False(t, svc.IsLoggedIn())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestCurrentUserMalformedCacheCountsAsLoggedOut(t *testing.T) {
	svc, kv := newMockBackedService(t)
	require.NoError(t, kv.Set(SessionKey, []byte(`{"broken`)))

	_, ok := svc.CurrentUser()
	assert.False(t, ok)
	assert.False(t, svc.IsLoggedIn())
}

func TestHasRole(t *testing.T) {
	svc, _ := newMockBackedService(t)
	_, err := svc.Login(context.Background(), Credentials{Username: "admin", Password: "password"})
	require.NoError(t, err)

	assert.True(t, svc.HasRole(RoleAdmin))
	assert.False(t, svc.HasRole(RoleChef))
}

func TestRegisterFallsBackToMockUsers(t *testing.T) {
	svc, _ := newMockBackedService(t)

	user, err := svc.Register(context.Background(), NewUser{
		Username: "newbie",
		Password: "secret123",
		Name:     "New Person",
	})
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, user.Role)
	assert.Equal(t, 4, user.ID)

	// The new account can log in immediately.
	session, err := svc.Login(context.Background(), Credentials{Username: "newbie", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "New Person", session.Name)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newMockBackedService(t)

	_, err := svc.Register(context.Background(), NewUser{
		Username: "customer",
		Password: "secret123",
		Name:     "Imposter",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
