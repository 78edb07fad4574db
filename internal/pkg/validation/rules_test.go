package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Name  string `json:"name" validate:"required,max=10"`
	Web   string `json:"web" validate:"required,fqdn|url"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,phone"`
	Score int    `json:"score" validate:"gte=0,lte=100"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()
	for _, c := range []contact{
		{Name: "Lincoln", Web: "lincoln.edu"},
		{Name: "Lincoln", Web: "https://lincoln.edu/home", Email: "a@b.org", Phone: "+1 (555) 010-0100", Score: 100},
	} {
		assert.NoError(t, v.Struct(c))
	}
}

func TestViolations_UseJSONNames(t *testing.T) {
	err := New().Struct(contact{Name: "far too long name", Email: "nope", Phone: "call me", Score: 101})
	require.Error(t, err)

	got := map[string]string{}
	for _, v := range Violations(err) {
		got[v.Field] = v.Rule
	}
	assert.Equal(t, map[string]string{
		"name":  "max",
		"web":   "required",
		"email": "email",
		"phone": "phone",
		"score": "lte",
	}, got)
}

func TestViolations_NonValidationError(t *testing.T) {
	assert.Nil(t, Violations(assert.AnError))
}

func TestPhonePattern(t *testing.T) {
	assert.True(t, CompiledPatterns.Phone.MatchString("555-0100"))
	assert.True(t, CompiledPatterns.Phone.MatchString("+44 20 7946 0958"))
	assert.False(t, CompiledPatterns.Phone.MatchString("12"))
	assert.False(t, CompiledPatterns.Phone.MatchString("phone"))
}
