package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/empleo-joven-api/internal/models"
)

func newTestManager(t *testing.T, now time.Time) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("test-secret", 24*time.Hour)
	require.NoError(t, err)
	m.now = func() time.Time { return now }
	return m
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, now)

	token, expiresAt, err := m.Issue(Identity{UserID: 7, RoleID: models.RoleCompany})
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), expiresAt)

	identity, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), identity.UserID)
	assert.Equal(t, models.RoleCompany, identity.RoleID)
}

func TestVerify_Expired(t *testing.T) {
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := newTestManager(t, issuedAt)

	token, _, err := m.Issue(Identity{UserID: 1, RoleID: models.RoleYouth})
	require.NoError(t, err)

	m.now = func() time.Time { return issuedAt.Add(25 * time.Hour) }
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongSecret(t *testing.T) {
	now := time.Now()
	m := newTestManager(t, now)
	token, _, err := m.Issue(Identity{UserID: 1, RoleID: models.RoleYouth})
	require.NoError(t, err)

	other, err := NewTokenManager("another-secret", time.Hour)
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	m := newTestManager(t, time.Now())

	claims := Claims{
		UserID: 1,
		RoleID: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingExpiry(t *testing.T) {
	m := newTestManager(t, time.Now())

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1, RoleID: models.RoleYouth}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MissingUserID(t *testing.T) {
	m := newTestManager(t, time.Now())

	token, _, err := m.Issue(Identity{RoleID: models.RoleYouth})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	m := newTestManager(t, time.Now())
	_, err := m.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
