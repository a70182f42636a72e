package admin

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid admin token")
	ErrNotConfigured   = errors.New("admin access not configured")
)

const tokenTTL = 24 * time.Hour

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth is the password gate in front of administrator actions (drop
// toggle, signup export). It is deliberately a single shared password,
// not a user system.
type Auth struct {
	passwordHash string
	secret       []byte
}

func NewAuth(passwordHash, jwtSecret string) *Auth {
	return &Auth{
		passwordHash: passwordHash,
		secret:       []byte(jwtSecret),
	}
}

// Login compares the password against the configured bcrypt hash and
// issues a short-lived token.
func (a *Auth) Login(password string) (string, error) {
	if a.passwordHash == "" || len(a.secret) == 0 {
		return "", ErrNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	c := claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(a.secret)
}

// Verify checks a token previously issued by Login.
func (a *Auth) Verify(tokenStr string) error {
	if len(a.secret) == 0 {
		return ErrNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !ok || c.Role != "admin" {
		return ErrInvalidToken
	}

	return nil
}
