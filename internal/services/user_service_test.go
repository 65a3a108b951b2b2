package services

import (
	"testing"

	"github.com/Katrinaqr/menu-RestApi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUserRole(t *testing.T) {
	service := NewUserService(setupTestDB(t))

	user, fieldErrs, err := service.Register("alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, user.CheckPassword("secret1"))
	assert.False(t, user.CheckPassword("secret2"))
}

func TestRegisterCollectsAllFailures(t *testing.T) {
	service := NewUserService(setupTestDB(t))

	_, fieldErrs, err := service.Register("bob", "bob@example.com", "secret1")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	// Duplicate name, duplicate email and a short password are all
	// reported in one response.
	_, fieldErrs, err = service.Register("bob", "bob@example.com", "abc")
	require.NoError(t, err)
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Message)
	}
	assert.Contains(t, messages, "bob already exists. Name must be unique.")
	assert.Contains(t, messages, "bob@example.com already exists. Email must be unique.")
	assert.Contains(t, messages, "Password must be longer than 6 characters.")
}

func TestRegisterRejectedSubmissionWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	user, fieldErrs, err := service.Register("", "not-an-email", "short")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NotEmpty(t, fieldErrs)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetUserByEmail(t *testing.T) {
	service := NewUserService(setupTestDB(t))

	created, _, err := service.Register("carol", "carol@example.com", "secret1")
	require.NoError(t, err)

	found, err := service.GetUserByEmail("carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	byID, err := service.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", byID.Name)

	_, err = service.GetUserByEmail("nobody@example.com")
	assert.Error(t, err)
}

func TestEnsureOwnerOnlyOnEmptyTable(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	require.NoError(t, service.EnsureOwner("owner", "owner@localhost", "changeme"))

	owner, err := service.GetUserByEmail("owner@localhost")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, owner.Role)

	// A second run on a populated table is a no-op.
	require.NoError(t, service.EnsureOwner("owner2", "owner2@localhost", "changeme"))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Any existing account suppresses provisioning, not just an owner.
	require.NoError(t, db.Where("email = ?", "owner@localhost").Delete(&models.User{}).Error)
	_, _, err = service.Register("dave", "dave@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, service.EnsureOwner("owner", "owner@localhost", "changeme"))
	_, err = service.GetUserByEmail("owner@localhost")
	assert.Error(t, err)
}
