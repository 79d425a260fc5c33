package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleDoctor.Valid())
	assert.True(t, RolePatient.Valid())

	assert.False(t, Role("NURSE").Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestUserPasswordHashNeverSerializes(t *testing.T) {
	user := &User{
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$12$secret",
		Role:         RolePatient,
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.Contains(t, string(raw), "john@example.com")
}
