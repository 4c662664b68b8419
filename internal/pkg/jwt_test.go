package pkg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrganizerTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateOrganizerToken(secret)
	require.NoError(t, err)

	claims, err := ParseOrganizer(token, secret)
	require.NoError(t, err)
	require.Equal(t, "organizer", claims.Role)
}

func TestOrganizerTokenWrongSecret(t *testing.T) {
	token, err := GenerateOrganizerToken([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseOrganizer(token, []byte("other-secret"))
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestOrganizerTokenGarbage(t *testing.T) {
	_, err := ParseOrganizer("not-a-token", []byte("test-secret"))
	require.ErrorIs(t, err, ErrTokenInvalid)
}
