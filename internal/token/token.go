package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/emsys-dev/employee-manager/backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token invalid or expired")

// Claims is the signed assertion carried by a session token. The account ID
// lives in the registered Subject claim.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AccountID parses the Subject claim back into the account's numeric ID.
func (c *Claims) AccountID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// Manager issues and verifies session tokens. Tokens are stateless: validity
// is fully determined by signature and expiry, no server-side session state.
type Manager interface {
	Issue(account *domain.Account) (string, error)
	Verify(tokenString string) (*Claims, error)
}

type JWTManager struct {
	secret     []byte
	expiration time.Duration
}

func NewJWTManager(secret string, expiration time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

func (m *JWTManager) Issue(account *domain.Account) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: account.Username,
		Role:     string(account.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})

	return t.SignedString(m.secret)
}

func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if !t.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
