package config

import (
	"time"

	"KMate/pkg/jwt"
)

// Jwt 令牌配置，过期时间单位为秒
type Jwt struct {
	Secret           string `json:"secret" yaml:"secret"`
	RefreshSecret    string `json:"refresh_secret" yaml:"refresh_secret"`
	ExpiresIn        int    `json:"expires_in" yaml:"expires_in"`
	RefreshExpiresIn int    `json:"refresh_expires_in" yaml:"refresh_expires_in"`
}

func ProvideIssuer(conf *Config) *jwt.Issuer {
	return &jwt.Issuer{
		AccessSecret:  []byte(conf.Jwt.Secret),
		RefreshSecret: []byte(conf.Jwt.RefreshSecret),
		AccessTTL:     time.Duration(conf.Jwt.ExpiresIn) * time.Second,
		RefreshTTL:    time.Duration(conf.Jwt.RefreshExpiresIn) * time.Second,
	}
}
