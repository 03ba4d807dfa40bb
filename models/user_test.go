package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("super-secret")
	require.NoError(t, err)
	require.NotEqual(t, "super-secret", hashed)

	u := User{Password: hashed}
	assert.True(t, u.CheckPassword("super-secret"))
	assert.False(t, u.CheckPassword("wrong-password"))
}

func TestRolePermissions(t *testing.T) {
	assert.False(t, RolePlayer.CanApproveMatches())
	assert.True(t, RoleJudge.CanApproveMatches())
	assert.True(t, RoleAdmin.CanApproveMatches())

	assert.False(t, RolePlayer.CanManageTournaments())
	assert.True(t, RoleJudge.CanManageTournaments())
	assert.True(t, RoleAdmin.CanManageTournaments())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RolePlayer))
	assert.True(t, ValidRole(RoleJudge))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole(Role("WIZARD")))
}
