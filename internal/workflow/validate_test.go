package workflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"abc123", true},
		{"1a", true},
		{"abcdef", false},
		{"123456", false},
		{"", false},
		{"!!!###", false},
		{"пароль7", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidPassword(tc.password), "password %q", tc.password)
	}
}

func TestValidateComment_Bounds(t *testing.T) {
	short := strings.Repeat("a", 49)
	exact := strings.Repeat("a", 50)
	long := strings.Repeat("a", 300)
	tooLong := strings.Repeat("a", 301)

	assert.ErrorIs(t, validateComment(short, 4), ErrValidation)
	assert.NoError(t, validateComment(exact, 4))
	assert.NoError(t, validateComment(long, 4))
	assert.ErrorIs(t, validateComment(tooLong, 4), ErrValidation)
}

func TestValidateComment_TrimsBeforeMeasuring(t *testing.T) {
	padded := "   " + strings.Repeat("a", 49) + "   "
	assert.ErrorIs(t, validateComment(padded, 4), ErrValidation)
}

func TestValidateComment_Rating(t *testing.T) {
	body := strings.Repeat("a", 60)
	assert.ErrorIs(t, validateComment(body, 0), ErrValidation)
	assert.ErrorIs(t, validateComment(body, 6), ErrValidation)
	assert.NoError(t, validateComment(body, 1))
	assert.NoError(t, validateComment(body, 5))
}
