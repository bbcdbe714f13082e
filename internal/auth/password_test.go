package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "normal password", password: "correct horse battery staple", wantErr: false},
		{name: "empty password", password: "", wantErr: true},
		{name: "oversized password", password: strings.Repeat("a", 2048), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := HashPassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "correct password", hash: encoded, password: "secret123", want: true},
		{name: "wrong password", hash: encoded, password: "secret124", want: false},
		{name: "malformed hash", hash: "not-a-hash", password: "secret123", want: false},
		{name: "oversized password", hash: encoded, password: strings.Repeat("a", 2048), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword(tt.hash, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, err := HashPassword("same password")
	require.NoError(t, err)
	b, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
