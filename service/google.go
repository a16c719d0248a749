package service

import (
	"KMate/config"
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// GoogleProfile Google userinfo 中需要的字段
type GoogleProfile struct {
	Sub           string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

type IGoogleProvider interface {
	AuthCodeURL(state string) string
	// Exchange 用授权码换取令牌并读取用户信息
	Exchange(ctx context.Context, code string) (*GoogleProfile, error)
}

var _ IGoogleProvider = (*GoogleProvider)(nil)

type GoogleProvider struct {
	oauth *oauth2.Config
}

func NewGoogleProvider(conf *config.Config) *GoogleProvider {
	return &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     conf.Google.ClientID,
			ClientSecret: conf.Google.ClientSecret,
			RedirectURL:  conf.Google.CallbackURL,
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	svc, err := googleoauth2.NewService(ctx, option.WithTokenSource(p.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, err
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	profile := &GoogleProfile{
		Sub:     info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}
	if info.VerifiedEmail != nil {
		profile.EmailVerified = *info.VerifiedEmail
	}
	return profile, nil
}
