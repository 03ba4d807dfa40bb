package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"optcg-tracker/models"
)

func TestIsLastAdmin(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		adminCount int64
		want       bool
	}{
		{"sole admin", models.RoleAdmin, 1, true},
		{"one of two admins", models.RoleAdmin, 2, false},
		{"player never counts", models.RolePlayer, 1, false},
		{"judge never counts", models.RoleJudge, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLastAdmin(tt.role, tt.adminCount))
		})
	}
}
