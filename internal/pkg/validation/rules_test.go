package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"member@bsffpi.org", true},
		{"first.last+tag@sub.domain.com", true},
		{"member@bsffpi", false},
		{"@bsffpi.org", false},
		{"member@", false},
		{"", false},
		{"member bsffpi.org", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidSession(t *testing.T) {
	tests := []struct {
		session string
		want    bool
	}{
		{"2023/2024", true},
		{"1999/2000", true},
		{"2023-2024", false},
		{"23/24", false},
		{"2023/24", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.session, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSession(tt.session))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("12345678"))
	assert.True(t, IsValidPassword("a-much-longer-password"))
	assert.False(t, IsValidPassword("1234567"))
	assert.False(t, IsValidPassword(""))
}

func TestStringValidation(t *testing.T) {
	t.Run("required empty value fails", func(t *testing.T) {
		assert.False(t, NewStringValidation("").Validate())
	})

	t.Run("optional empty value passes", func(t *testing.T) {
		assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	})

	t.Run("length bounds", func(t *testing.T) {
		v := NewStringValidation("ab").WithMinLength(NameMinLength).WithMaxLength(NameMaxLength)
		assert.True(t, v.Validate())

		assert.False(t, NewStringValidation("a").WithMinLength(NameMinLength).Validate())
	})

	t.Run("pattern match", func(t *testing.T) {
		v := NewStringValidation("2023/2024").WithPattern(CompiledPatterns.Session)
		assert.True(t, v.Validate())

		assert.False(t, NewStringValidation("nope").WithPattern(CompiledPatterns.Session).Validate())
	})
}
