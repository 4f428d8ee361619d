package utils

import (
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Easy@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Easy@123", hash)

	assert.True(t, VerifyPassword(hash, "Easy@123"))
	assert.False(t, VerifyPassword(hash, "easy@123"))
	assert.False(t, VerifyPassword("not-a-digest", "Easy@123"))
	assert.False(t, VerifyPassword("", "Easy@123"))

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestTokenIssuer_GenerateValidate(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateToken("emp001", "john@abc.com", "Employee")
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp001", claims.EmployeeID)
	assert.Equal(t, "john@abc.com", claims.Email)
	assert.Equal(t, "Employee", claims.Role)

	_, err = NewTokenIssuer("other", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Nanosecond)
	token, err := issuer.GenerateToken("emp001", "john@abc.com", "Employee")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsTokenWithoutEmployeeAudience(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		EmployeeID: "emp001",
		Role:       "Employee",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = issuer.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateImageFile(t *testing.T) {
	assert.ErrorIs(t, ValidateImageFile(nil, 10), ErrFileRequired)
	assert.ErrorIs(t, ValidateImageFile(&multipart.FileHeader{Filename: "a.png", Size: 20}, 10), ErrFileTooLarge)
	assert.ErrorIs(t, ValidateImageFile(&multipart.FileHeader{Filename: "a.exe", Size: 5}, 10), ErrNotAnImage)
	assert.NoError(t, ValidateImageFile(&multipart.FileHeader{Filename: "a.PNG", Size: 5}, 10))
}

func TestBlobName(t *testing.T) {
	name := BlobName("Photo.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.Len(t, name, 36+4)

	text := TextFileName()
	assert.True(t, strings.HasPrefix(text, "file-"))
	assert.True(t, strings.HasSuffix(text, ".txt"))
}
