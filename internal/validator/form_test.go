package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/formkit/internal/form"
)

func TestFromSnapshot(t *testing.T) {
	snap := form.Snapshot{
		Values: map[string]any{
			"name":     "Al",
			"email":    "nope",
			"password": "Abc12345",
			"zip":      "1",
		},
		Errors: map[string]string{
			"zip":      "bad zip",
			"password": "too weak",
			"name":     "Name too short",
		},
		PasswordStrength: 3,
	}

	r := FromSnapshot(snap, []string{"name", "email", "password"})

	errs := r.Errors()
	require.Len(t, errs, 3)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "Al", errs[0].Value)
	assert.Equal(t, "password", errs[1].Field)
	assert.Nil(t, errs[1].Value, "password values are never reported")
	assert.Equal(t, "zip", errs[2].Field, "unknown fields follow declared ones")

	infos := r.Infos()
	require.Len(t, infos, 1)
	assert.Equal(t, "strength 3/5 (Fair)", infos[0].Message)
}

func TestFromSnapshot_ValidWithoutPassword(t *testing.T) {
	snap := form.Snapshot{
		Values: map[string]any{"email": "a@b.com"},
		Errors: map[string]string{},
	}
	r := FromSnapshot(snap, []string{"email"})
	assert.False(t, r.HasErrors())
	assert.Empty(t, r.Issues)
}

func TestFromSnapshot_EmptyPasswordHasNoNote(t *testing.T) {
	snap := form.Snapshot{Values: map[string]any{"password": ""}}
	assert.Empty(t, FromSnapshot(snap, nil).Infos())
}
