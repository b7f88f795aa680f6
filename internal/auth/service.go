package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/code-differently/cs-25-2-team2/internal/storage"
	"github.com/code-differently/cs-25-2-team2/pkg/logkey"
)

// SessionKey is the single key the cached identity occupies in the backing
// store.
const SessionKey = "user"

type mockUser struct {
	User
	Password string
}

// mockUsers back the login fallback when the backend is unreachable. Demo
// credentials only.
func mockUsers() []mockUser {
	return []mockUser{
		{User: User{ID: 1, Username: "customer", Name: "John Doe", PhoneNumber: "123-456-7890", Role: RoleCustomer}, Password: "password"},
		{User: User{ID: 2, Username: "chef", Name: "Gordon Ramsay", PhoneNumber: "987-654-3210", Role: RoleChef}, Password: "password"},
		{User: User{ID: 3, Username: "admin", Name: "Admin User", PhoneNumber: "555-123-4567", Role: RoleAdmin}, Password: "password"},
	}
}

// Service authenticates against the backend /auth endpoints, falling back to
// the fixed mock users when the backend cannot be reached, and caches the
// resulting session in the KV store.
type Service struct {
	baseURL string
	http    *http.Client
	keys    *Keys
	kv      storage.KV

	mu    sync.Mutex
	users []mockUser
}

func NewService(baseURL string, timeout time.Duration, keys *Keys, kv storage.KV) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		keys:    keys,
		kv:      kv,
		users:   mockUsers(),
	}
}

// Login authenticates and caches the session. Backend failures degrade to the
// mock user set; bad credentials fail on either path.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	session, err := s.remoteLogin(ctx, creds)
	if err != nil {
		slog.Warn("auth service unreachable, using mock users",
			slog.String(logkey.ERROR, err.Error()))
		session, err = s.mockLogin(creds)
		if err != nil {
			return nil, err
		}
	}
	if err := s.cacheSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) remoteLogin(ctx context.Context, creds Credentials) (*Session, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling auth service: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("auth service returned %s", resp.Status)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("error decoding auth response: %w", err)
	}
	return &session, nil
}

func (s *Service) mockLogin(creds Credentials) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == creds.Username && u.Password == creds.Password {
			token, err := s.keys.Mint(u.User)
			if err != nil {
				return nil, err
			}
			return &Session{User: u.User, Token: token}, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// Register creates an account, degrading to the mock user set when the
// backend is unreachable. New mock users are customers.
func (s *Service) Register(ctx context.Context, newUser NewUser) (*User, error) {
	user, err := s.remoteRegister(ctx, newUser)
	if err == nil {
		return user, nil
	}
	slog.Warn("auth service unreachable, registering mock user",
		slog.String(logkey.ERROR, err.Error()))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == newUser.Username {
			return nil, ErrUsernameTaken
		}
	}
	created := mockUser{
		User: User{
			ID:          len(s.users) + 1,
			Username:    newUser.Username,
			Name:        newUser.Name,
			PhoneNumber: newUser.PhoneNumber,
			Role:        RoleCustomer,
		},
		Password: newUser.Password,
	}
	s.users = append(s.users, created)
	user = &created.User
	return user, nil
}

func (s *Service) remoteRegister(ctx context.Context, newUser NewUser) (*User, error) {
	body, err := json.Marshal(newUser)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/register", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling auth service: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("auth service returned %s", resp.Status)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("error decoding auth response: %w", err)
	}
	return &user, nil
}

// Logout drops the cached session.
func (s *Service) Logout() error {
	return s.kv.Delete(SessionKey)
}

// CurrentUser returns the cached identity, if any. Malformed cached data
// counts as logged out.
func (s *Service) CurrentUser() (*User, bool) {
	raw, ok, err := s.kv.Get(SessionKey)
	if err != nil || !ok {
		return nil, false
	}
	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		slog.Error("error parsing cached session", slog.String(logkey.ERROR, err.Error()))
		return nil, false
	}
	return &session.User, true
}

// IsLoggedIn reports whether an identity is cached.
func (s *Service) IsLoggedIn() bool {
	_, ok := s.CurrentUser()
	return ok
}

// HasRole reports whether the cached identity carries the role.
func (s *Service) HasRole(role string) bool {
	user, ok := s.CurrentUser()
	return ok && user.Role == role
}

func (s *Service) cacheSession(session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.kv.Set(SessionKey, raw); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}
	return nil
}
