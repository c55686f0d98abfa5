package util

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
		{
			name:     "Typical password",
			password: "parola-mea-1234",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  false, // bcrypt can hash empty strings
		},
		{
			name:     "Diacritics and symbols",
			password: "Brașov!2024&Țară",
			wantErr:  false,
		},
		{
			name:     "Over the bcrypt 72-byte limit",
			password: strings.Repeat("x", 73),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, hash)
			} else {
				assert.NoError(t, err)
				assert.NotEqual(t, tt.password, hash)
				assert.True(t, strings.HasPrefix(hash, "$2a$"))
			}
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("parola-anei")
	require.NoError(t, err)

	tests := []struct {
		name           string
		hashedPassword string
		password       string
		want           bool
	}{
		{
			name:           "Matching password",
			hashedPassword: hash,
			password:       "parola-anei",
			want:           true,
		},
		{
			name:           "Wrong password",
			hashedPassword: hash,
			password:       "parola-altcuiva",
			want:           false,
		},
		{
			name:           "Case matters",
			hashedPassword: hash,
			password:       "Parola-Anei",
			want:           false,
		},
		{
			name:           "Empty attempt",
			hashedPassword: hash,
			password:       "",
			want:           false,
		},
		{
			name:           "Garbage hash",
			hashedPassword: "nu-este-un-hash",
			password:       "parola-anei",
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.hashedPassword, tt.password))
		})
	}
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	hash1, err := HashPassword("aceeași-parolă")
	require.NoError(t, err)
	hash2, err := HashPassword("aceeași-parolă")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.True(t, VerifyPassword(hash1, "aceeași-parolă"))
	assert.True(t, VerifyPassword(hash2, "aceeași-parolă"))
}
