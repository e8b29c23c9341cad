package database

import (
	"strings"
	"testing"

	"github.com/rpupo63/playground-backend/errs"
	"github.com/stretchr/testify/assert"
)

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "cat.png", false},
		{"spaces and unicode", "mein bild ä.jpg", false},
		{"dotfile", ".hidden", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"slash", "a/b.png", true},
		{"backslash", `a\b.png`, true},
		{"traversal", "../etc/passwd", true},
		{"nul", "a\x00b", true},
		{"too long", strings.Repeat("a", 256), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.input)
			if tt.wantErr {
				assert.True(t, errs.IsInvalidFilename(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProjectIDLength(t *testing.T) {
	assert.NoError(t, ValidateProjectID("kleiner-mutiger-roter-fuchs"))
	assert.Error(t, ValidateProjectID(strings.Repeat("x", 129)))
}
