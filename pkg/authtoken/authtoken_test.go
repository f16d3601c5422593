package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	mgr := NewManager("test-secret", "buspark", 15*time.Minute)

	token, err := mgr.Issue(42, "passenger", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "passenger", claims.Role)
	assert.Equal(t, "buspark", claims.Issuer)
}

func TestVerify_Expired(t *testing.T) {
	mgr := NewManager("test-secret", "buspark", time.Minute)

	token, err := mgr.Issue(42, "admin", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = mgr.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	mgr := NewManager("test-secret", "buspark", time.Minute)
	other := NewManager("other-secret", "buspark", time.Minute)

	token, err := mgr.Issue(42, "admin", time.Now())
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
