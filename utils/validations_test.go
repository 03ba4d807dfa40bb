package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "luffy@example.com", false},
		{"empty", "", true},
		{"no at sign", "luffy.example.com", true},
		{"contains space", "luffy @example.com", true},
		{"too long", strings.Repeat("a", 45) + "@example.com", true},
		{"banned word", "admin@example.com", true},
		{"banned word uppercase", "ROOT@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "secret-pass", false},
		{"empty", "", true},
		{"too short", "short", true},
		{"minimum length", "12345678", false},
		{"too long", strings.Repeat("x", 51), true},
		{"contains space", "secret pass", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}
