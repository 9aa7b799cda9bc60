package auth

import (
	"errors"
	"fmt"
	"time"

	"railBooker/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is what a verified token carries about the caller.
type Claims struct {
	Username string
	Role     string
}

// Authenticator verifies config-declared users and issues HS256 JWTs.
type Authenticator struct {
	secret string
	ttl    time.Duration
	users  map[string]config.AuthUser
}

func New(cfg config.Auth) *Authenticator {
	users := make(map[string]config.AuthUser, len(cfg.Users))
	for _, u := range cfg.Users {
		users[u.Username] = u
	}

	return &Authenticator{
		secret: cfg.Secret,
		ttl:    cfg.TokenTTL,
		users:  users,
	}
}

// Login checks the password against the stored bcrypt hash and returns
// a signed token. Unknown users and wrong passwords both come back as
// ErrInvalidCredentials.
func (a *Authenticator) Login(username, password string) (string, error) {
	u, ok := a.users[username]
	if !ok {
		return "", ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  u.Username,
		"role": u.Role,
		"exp":  now.Add(a.ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(a.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token and returns its claims.
func (a *Authenticator) Verify(raw string) (Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(a.secret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	role, _ := mapClaims["role"].(string)
	if sub == "" || role == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{Username: sub, Role: role}, nil
}
