package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLeaderName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"monkey d. luffy", "Monkey D. Luffy"},
		{"  MONKEY   D.  LUFFY ", "Monkey D. Luffy"},
		{"roronoa zoro", "Roronoa Zoro"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLeaderName(tt.in))
	}
}

func TestNormalizeLeaderNameGroupsSpellings(t *testing.T) {
	a := NormalizeLeaderName("Monkey D. Luffy")
	b := NormalizeLeaderName("monkey d. luffy")
	assert.Equal(t, a, b)
}
