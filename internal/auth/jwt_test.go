package auth

import (
	"testing"
	"time"

	"github.com/fragpit/songvote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	p := model.Principal{UserID: 5, Role: model.RoleSuperAdmin}

	token, err := CreateJWTToken("secret", time.Minute, p)
	require.NoError(t, err)

	got, err := PrincipalFromJWTToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPrincipalFromJWTToken_Invalid(t *testing.T) {
	valid, err := CreateJWTToken(
		"secret",
		time.Minute,
		model.Principal{UserID: 1},
	)
	require.NoError(t, err)

	expired, err := CreateJWTToken(
		"secret",
		-time.Minute,
		model.Principal{UserID: 1},
	)
	require.NoError(t, err)

	anonymous, err := CreateJWTToken("secret", time.Minute, model.Principal{})
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{name: "wrong secret", secret: "other", token: valid},
		{name: "expired", secret: "secret", token: expired},
		{name: "garbage", secret: "secret", token: "not.a.token"},
		{name: "no user", secret: "secret", token: anonymous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PrincipalFromJWTToken(tt.secret, tt.token)
			assert.Error(t, err)
		})
	}
}
