package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicStripsPassword(t *testing.T) {
	user := User{
		ID:        1,
		FirstName: "Anna",
		LastName:  "Fedorova",
		Email:     "a@x.com",
		Password:  "bcrypt-hash",
	}

	public := user.Public()
	assert.Empty(t, public.Password)
	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, user.Email, public.Email)

	// the original is untouched
	assert.Equal(t, "bcrypt-hash", user.Password)
}

func TestPasswordNeverSerialized(t *testing.T) {
	user := User{ID: 1, Email: "a@x.com", Password: "bcrypt-hash"}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "bcrypt-hash")
	assert.NotContains(t, string(raw), "password")
}
