package auth

import (
	"testing"

	"github.com/RAINBOBOBO/Warbler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAuthenticated(t *testing.T) {
	user := &domain.User{ID: 1, Username: "alice"}

	res, err := Check(user, IsAuthenticated)
	require.NoError(t, err)
	assert.Equal(t, user, res.User)

	_, err = Check(nil, IsAuthenticated)
	assert.ErrorIs(t, err, ErrDenied)
}

func TestCheckOwnership(t *testing.T) {
	owner := &domain.User{ID: 1}
	stranger := &domain.User{ID: 2}

	// Composed predicates: authentication first, then ownership
	_, err := Check(owner, IsAuthenticated, IsOwner(1))
	assert.NoError(t, err)

	_, err = Check(stranger, IsAuthenticated, IsOwner(1))
	assert.ErrorIs(t, err, ErrDenied)

	_, err = Check(nil, IsAuthenticated, IsOwner(1))
	assert.ErrorIs(t, err, ErrDenied)
}
