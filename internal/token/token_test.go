package token

import (
	"strings"
	"testing"
	"time"

	"github.com/emsys-dev/employee-manager/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

var testAccount = &domain.Account{
	ID:       7,
	Username: "admin",
	Role:     domain.RoleAdmin,
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", 7*24*time.Hour)

	tokenString, err := m.Issue(testAccount)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := m.Verify(tokenString)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "admin", claims.Role)

	accountID, err := claims.AccountID()
	require.NoError(t, err)
	require.Equal(t, int64(7), accountID)

	expiresIn := time.Until(claims.ExpiresAt.Time)
	require.InDelta(t, (7 * 24 * time.Hour).Seconds(), expiresIn.Seconds(), 5)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", -time.Second)

	tokenString, err := m.Issue(testAccount)
	require.NoError(t, err)

	_, err = m.Verify(tokenString)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager("right-secret", time.Hour)
	verifier := NewJWTManager("wrong-secret", time.Hour)

	tokenString, err := issuer.Issue(testAccount)
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTamperedPayload(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	original, err := m.Issue(testAccount)
	require.NoError(t, err)

	other, err := m.Issue(&domain.Account{ID: 8, Username: "intruder", Role: domain.RoleAdmin})
	require.NoError(t, err)

	// splice the other token's payload onto the original signature
	originalParts := strings.Split(original, ".")
	otherParts := strings.Split(other, ".")
	require.Len(t, originalParts, 3)
	require.Len(t, otherParts, 3)

	tampered := strings.Join([]string{originalParts[0], otherParts[1], originalParts[2]}, ".")
	require.NotEqual(t, original, tampered)

	_, err = m.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	_, err := m.Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
