package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var ErrNoSession = errors.New("no session in request context")

// Manager issues and reads the storefront's own session JWTs. The token
// carries only the session ID; everything sensitive lives in the Store.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue creates a fresh session ID and the signed JWT that references it.
func (m *Manager) Issue() (sid string, signed string, err error) {
	sid = uuid.NewString()
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(m.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err = token.SignedString(m.secret)
	if err != nil {
		return "", "", err
	}
	return sid, signed, nil
}

func (m *Manager) Secret() []byte {
	return m.secret
}

// SIDFromCtx reads the session ID out of the JWT claims that the jwt
// middleware stored on the request.
func SIDFromCtx(c *fiber.Ctx) (string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return "", ErrNoSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrNoSession
	}
	return sid, nil
}
