package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"KMate/models"
	"KMate/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (*AuthService, *fakeUsers, *fakeStates, *fakeGoogle) {
	users := newFakeUsers()
	states := newFakeStates()
	google := &fakeGoogle{}
	svc := &AuthService{
		Users:  users,
		States: states,
		Google: google,
		Issuer: &jwt.Issuer{
			AccessSecret:  []byte("access-secret"),
			RefreshSecret: []byte("refresh-secret"),
			AccessTTL:     time.Hour,
			RefreshTTL:    7 * 24 * time.Hour,
		},
	}
	return svc, users, states, google
}

func TestIssueThenValidate(t *testing.T) {
	svc, _, _, _ := newAuthService()

	pair, err := svc.IssueTokens(&models.User{ID: 42, Email: "a@b.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestIssueTokens_DefaultRole(t *testing.T) {
	svc, _, _, _ := newAuthService()

	pair, err := svc.IssueTokens(&models.User{ID: 1, Email: "x@y.com"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestValidateToken_RejectsRefreshToken(t *testing.T) {
	svc, _, _, _ := newAuthService()

	pair, err := svc.IssueTokens(&models.User{ID: 1, Email: "x@y.com"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.RefreshToken)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_UsesCurrentUser(t *testing.T) {
	svc, users, _, _ := newAuthService()
	ctx := context.Background()

	user := &models.User{GoogleSub: "g-1", Email: "old@b.com", Role: models.RoleUser}
	require.NoError(t, users.Create(ctx, user))
	pair, err := svc.IssueTokens(user)
	require.NoError(t, err)

	// 刷新时使用最新的邮箱和角色
	_, err = users.UpdateById(ctx, user.ID, map[string]any{"email": "new@b.com", "role": models.RoleAdmin})
	require.NoError(t, err)

	next, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestRefresh_FailsUniformly(t *testing.T) {
	svc, users, _, _ := newAuthService()
	ctx := context.Background()

	user := &models.User{GoogleSub: "g-1", Email: "a@b.com", Role: models.RoleUser}
	require.NoError(t, users.Create(ctx, user))
	pair, err := svc.IssueTokens(user)
	require.NoError(t, err)

	expired, err := jwt.GenerateToken(svc.Issuer.RefreshSecret, user.ID, user.Email, user.Role, jwt.TypeRefresh, -time.Minute)
	require.NoError(t, err)
	wrongSecret, err := jwt.GenerateToken([]byte("other"), user.ID, user.Email, user.Role, jwt.TypeRefresh, time.Hour)
	require.NoError(t, err)
	ghost, err := jwt.GenerateToken(svc.Issuer.RefreshSecret, 999, "ghost@b.com", models.RoleUser, jwt.TypeRefresh, time.Hour)
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":      "not-a-jwt",
		"expired":      expired,
		"wrong secret": wrongSecret,
		"access token": pair.AccessToken,
		"missing user": ghost,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Refresh(ctx, token)
			assert.True(t, errors.Is(err, ErrInvalidRefreshToken), "got %v", err)
		})
	}
}

func TestUpsertUser(t *testing.T) {
	svc, users, _, _ := newAuthService()
	ctx := context.Background()

	created, err := svc.UpsertUser(ctx, &GoogleProfile{
		Sub:           "g-7",
		Email:         "first@b.com",
		Name:          "First",
		Picture:       "https://img/1.png",
		EmailVerified: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.True(t, created.EmailVerified)

	// 提升为管理员后再次登录，角色保留，空字段不覆盖
	_, err = users.UpdateById(ctx, created.ID, map[string]any{"role": models.RoleAdmin})
	require.NoError(t, err)

	updated, err := svc.UpsertUser(ctx, &GoogleProfile{Sub: "g-7", Email: "second@b.com", EmailVerified: true})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "second@b.com", updated.Email)
	assert.Equal(t, "First", updated.Name)
	require.NotNil(t, updated.AvatarURL)
	assert.Equal(t, "https://img/1.png", *updated.AvatarURL)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUpsertUser_MissingSub(t *testing.T) {
	svc, _, _, _ := newAuthService()
	_, err := svc.UpsertUser(context.Background(), &GoogleProfile{Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrGoogleProfile)
}

func TestGoogleFlow(t *testing.T) {
	svc, _, states, google := newAuthService()
	ctx := context.Background()
	google.profile = &GoogleProfile{Sub: "g-9", Email: "g9@b.com", Name: "Nine"}

	url, err := svc.GoogleAuthURL(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, google.state)
	assert.True(t, strings.HasSuffix(url, google.state))
	assert.True(t, states.states[google.state])

	pair, err := svc.GoogleCallback(ctx, google.state, "code")
	require.NoError(t, err)
	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "g9@b.com", claims.Email)

	// state 只能使用一次
	_, err = svc.GoogleCallback(ctx, google.state, "code")
	assert.ErrorIs(t, err, ErrOAuthState)
}

func TestGoogleCallback_ExchangeError(t *testing.T) {
	svc, _, states, google := newAuthService()
	ctx := context.Background()
	google.err = errors.New("bad code")
	states.states["s1"] = true

	_, err := svc.GoogleCallback(ctx, "s1", "code")
	assert.EqualError(t, err, "bad code")
}
