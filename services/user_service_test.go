package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserDerivesUsername(t *testing.T) {
	setupTestDB(t)
	svc := NewUserService()

	user, err := svc.CreateUser(context.Background(), "jane@example.com", "Jane  Doe!", "sifre12345")
	require.NoError(t, err)
	assert.Equal(t, "Jane-Doe-", user.Username)
	assert.Equal(t, "Jane  Doe!", user.FullName)

	// Parola düz metin saklanmaz.
	assert.NotEqual(t, "sifre12345", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sifre12345")))
}

func TestCreateUserUsernameCollisionGetsSuffix(t *testing.T) {
	setupTestDB(t)
	svc := NewUserService()

	first, err := svc.CreateUser(context.Background(), "a@example.com", "Jane Doe", "sifre12345")
	require.NoError(t, err)

	second, err := svc.CreateUser(context.Background(), "b@example.com", "Jane Doe", "sifre12345")
	require.NoError(t, err)

	assert.NotEqual(t, first.Username, second.Username)
	assert.True(t, strings.HasPrefix(second.Username, "Jane-Doe"))
}

func TestCreateUserDuplicateEmailRejected(t *testing.T) {
	setupTestDB(t)
	svc := NewUserService()

	_, err := svc.CreateUser(context.Background(), "jane@example.com", "Jane Doe", "sifre12345")
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), "jane@example.com", "Başka Biri", "sifre12345")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUpdateUserConflictsReported(t *testing.T) {
	setupTestDB(t)
	svc := NewUserService()

	jane, err := svc.CreateUser(context.Background(), "jane@example.com", "Jane Doe", "sifre12345")
	require.NoError(t, err)
	ali, err := svc.CreateUser(context.Background(), "ali@example.com", "Ali Veli", "sifre12345")
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), ali.ID, UserUpdates{Email: jane.Email})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.UpdateUser(context.Background(), ali.ID, UserUpdates{Username: jane.Username})
	require.ErrorIs(t, err, ErrUsernameTaken)

	updated, err := svc.UpdateUser(context.Background(), ali.ID, UserUpdates{FullName: "Ali V."})
	require.NoError(t, err)
	assert.Equal(t, "Ali V.", updated.FullName)
	assert.Equal(t, ali.Email, updated.Email)
}

func TestDeleteUserNotFound(t *testing.T) {
	setupTestDB(t)
	svc := NewUserService()

	err := svc.DeleteUser(context.Background(), 123)
	require.ErrorIs(t, err, ErrUserNotFound)
}
