package store

import (
	"testing"

	"civicreport-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStoreRegisterAndLogin(t *testing.T) {
	us := NewUserStore()

	user, err := us.Create("Alex Johnson", "Alex@Citizen.gov", "password123", models.RoleCitizen)
	require.NoError(t, err)
	assert.Equal(t, "alex@citizen.gov", user.Email)
	assert.Equal(t, models.RoleCitizen, user.Role)
	assert.NotEqual(t, "password123", user.Password, "password must be hashed")

	found, err := us.FindByEmail("alex@citizen.gov")
	require.NoError(t, err)
	assert.True(t, found.ComparePassword("password123"))
	assert.False(t, found.ComparePassword("wrong"))

	byID, err := us.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byID.ID)
}

func TestUserStoreDuplicateEmail(t *testing.T) {
	us := NewUserStore()

	_, err := us.Create("Alex", "alex@citizen.gov", "password123", models.RoleCitizen)
	require.NoError(t, err)

	_, err = us.Create("Other", "alex@citizen.gov", "hunter22", models.RoleCitizen)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUserStoreUnknownUser(t *testing.T) {
	us := NewUserStore()

	var nf *NotFoundError
	_, err := us.FindByEmail("ghost@nowhere.gov")
	require.ErrorAs(t, err, &nf)
	_, err = us.FindByID("missing")
	require.ErrorAs(t, err, &nf)
}
