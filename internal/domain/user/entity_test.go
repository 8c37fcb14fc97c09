//go:build unit

package user_test

import (
	"testing"

	"majestic-manor/internal/domain/user"
	"majestic-manor/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("new account is active with a fresh ID", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Equal(t, user.RoleAdmin, actual.Role())
	})

	t.Run("reconstruct round-trips every field", func(t *testing.T) {
		built, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		restored := user.ReconstructUser(
			built.ID(), built.Email(), built.PasswordHash(),
			built.Role(), built.IsActive(), built.CreatedAt(),
		)

		if diff := cmp.Diff(built, restored, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, built.ID(), restored.ID())
		assert.Equal(t, built.Email().Value(), restored.Email().Value())
	})
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		errIs error
	}{
		{name: "plain address", raw: "clerk@majestic-manor.test"},
		{name: "address with plus tag", raw: "clerk+front@majestic-manor.test"},
		{name: "surrounding whitespace is trimmed", raw: "  clerk@majestic-manor.test  "},
		{name: "empty", raw: "", errIs: user.ErrInvalidEmail},
		{name: "missing domain", raw: "clerk@", errIs: user.ErrInvalidEmail},
		{name: "missing local part", raw: "@majestic-manor.test", errIs: user.ErrInvalidEmail},
		{name: "no tld", raw: "clerk@localhost", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.raw)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, email.Value())
			assert.NotContains(t, email.Value(), " ")
		})
	}
}

func TestNewRole(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  user.Role
		errIs error
	}{
		{name: "staff", raw: "staff", want: user.RoleStaff},
		{name: "admin", raw: "admin", want: user.RoleAdmin},
		{name: "unknown role", raw: "owner", errIs: user.ErrInvalidRole},
		{name: "empty", raw: "", errIs: user.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := user.NewRole(tt.raw)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
			assert.True(t, role.IsValid())
		})
	}
}
