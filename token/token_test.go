package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager([]byte("secret"), time.Hour)

	tokenString, err := m.Generate(42, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := m.Parse(tokenString)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := NewManager([]byte("secret"), time.Hour)
	other := NewManager([]byte("different"), time.Hour)

	tokenString, err := m.Generate(42, "a@x.com")
	require.NoError(t, err)

	_, err = other.Parse(tokenString)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewManager([]byte("secret"), -time.Minute)

	tokenString, err := m.Generate(42, "a@x.com")
	require.NoError(t, err)

	_, err = m.Parse(tokenString)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewManager([]byte("secret"), time.Hour)

	_, err := m.Parse("not-a-token")
	assert.Error(t, err)
}
