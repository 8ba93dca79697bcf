package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/printfood/storefront/internal/upstream"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

// User mirrors the upstream account record.
type User struct {
	ID        int    `json:"id"`
	FullName  string `json:"fullname"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Registration is the payload forwarded to upstream account creation.
type Registration struct {
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Repository performs credential exchange against the upstream API.
type Repository interface {
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	Register(ctx context.Context, reg Registration) (User, error)
}

// UpstreamRepository talks to the real commerce backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (r *UpstreamRepository) Login(ctx context.Context, email, password string) (string, error) {
	var out loginResponse
	err := r.api.Post(ctx, "/user/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		if ue, ok := upstream.AsError(err); ok && ue.Status == 401 {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if out.AccessToken == "" {
		return "", ErrInvalidCredentials
	}
	return out.AccessToken, nil
}

func (r *UpstreamRepository) Register(ctx context.Context, reg Registration) (User, error) {
	var out User
	err := r.api.Post(ctx, "/user/register-user", reg, &out)
	if err != nil {
		if ue, ok := upstream.AsError(err); ok && ue.Status == 409 {
			return User{}, ErrEmailExists
		}
		return User{}, err
	}
	return out, nil
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	users  map[string]string // email -> password
	nextID int
}

func NewInMemoryRepository(seed map[string]string) *InMemoryRepository {
	users := make(map[string]string, len(seed))
	for email, pass := range seed {
		users[email] = pass
	}
	return &InMemoryRepository{users: users, nextID: len(seed) + 1}
}

func (r *InMemoryRepository) Login(ctx context.Context, email, password string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if pass, ok := r.users[email]; ok && pass == password {
		return "upstream-token-" + email, nil
	}
	return "", ErrInvalidCredentials
}

func (r *InMemoryRepository) Register(ctx context.Context, reg Registration) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[reg.Email]; ok {
		return User{}, ErrEmailExists
	}
	r.users[reg.Email] = reg.Password
	r.nextID++
	return User{ID: r.nextID, FullName: reg.FullName, Email: reg.Email, Phone: reg.Phone, IsActive: true}, nil
}
