package config

// Google OAuth 客户端配置
type Google struct {
	ClientID     string `json:"client_id" yaml:"client_id"`
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
	CallbackURL  string `json:"callback_url" yaml:"callback_url"`
}
