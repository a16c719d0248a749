package service

import (
	"KMate/models"
	"KMate/pkg/jwt"
	"KMate/pkg/log"
	"KMate/pkg/response"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidRefreshToken refresh 失败统一返回，不区分具体原因
	ErrInvalidRefreshToken = response.Unauthorized("Invalid refresh token")
	ErrInvalidToken        = response.Unauthorized("Invalid token")
	ErrOAuthState          = errors.New("oauth state mismatch")
	ErrGoogleProfile       = errors.New("google profile missing sub")
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	// GoogleAuthURL 生成 state 并返回授权地址
	GoogleAuthURL(ctx context.Context) (string, error)
	// GoogleCallback 校验 state，换取用户信息并签发令牌
	GoogleCallback(ctx context.Context, state, code string) (*TokenPair, error)
	UpsertUser(ctx context.Context, profile *GoogleProfile) (*models.User, error)
	IssueTokens(user *models.User) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthService struct {
	Users  UserStore
	States OAuthStateStore
	Google IGoogleProvider
	Issuer *jwt.Issuer
}

func (s *AuthService) GoogleAuthURL(ctx context.Context) (string, error) {
	state := uuid.NewString()
	if err := s.States.Save(ctx, state); err != nil {
		return "", err
	}
	return s.Google.AuthCodeURL(state), nil
}

func (s *AuthService) GoogleCallback(ctx context.Context, state, code string) (*TokenPair, error) {
	ok, err := s.States.Consume(ctx, state)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOAuthState
	}

	profile, err := s.Google.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	user, err := s.UpsertUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	return s.IssueTokens(user)
}

// UpsertUser 按 google_sub 查找，存在则用非空字段覆盖，不存在则新建普通用户
func (s *AuthService) UpsertUser(ctx context.Context, profile *GoogleProfile) (*models.User, error) {
	if profile == nil || profile.Sub == "" {
		return nil, ErrGoogleProfile
	}

	user, err := s.Users.FindByGoogleSub(ctx, profile.Sub)
	if err != nil {
		return nil, err
	}

	if user != nil {
		fields := map[string]any{"email_verified": profile.EmailVerified}
		if profile.Email != "" {
			fields["email"] = profile.Email
		}
		if profile.Name != "" {
			fields["name"] = profile.Name
		}
		if profile.Picture != "" {
			fields["avatar_url"] = profile.Picture
		}
		if _, err := s.Users.UpdateById(ctx, user.ID, fields); err != nil {
			return nil, err
		}
		return s.Users.FindById(ctx, user.ID)
	}

	user = &models.User{
		GoogleSub:     profile.Sub,
		Email:         profile.Email,
		Name:          profile.Name,
		EmailVerified: profile.EmailVerified,
		Role:          models.RoleUser,
	}
	if profile.Picture != "" {
		user.AvatarURL = &profile.Picture
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	log.L.Info("user created", zap.Uint64("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

func (s *AuthService) IssueTokens(user *models.User) (*TokenPair, error) {
	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	access, refresh, err := s.Issuer.Pair(user.ID, user.Email, role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.Issuer.ParseRefresh(refreshToken)
	if err != nil {
		log.L.Debug("refresh token rejected", zap.Error(err))
		return nil, ErrInvalidRefreshToken
	}
	uid, err := claims.UserID()
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.Users.FindById(ctx, uid)
	if err != nil {
		log.L.Debug("refresh token user lookup failed", zap.Uint64("user_id", uid), zap.Error(err))
		return nil, ErrInvalidRefreshToken
	}

	pair, err := s.IssueTokens(user)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	return pair, nil
}

func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	claims, err := s.Issuer.ParseAccess(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
