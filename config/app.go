package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// OAuth 完成后跳转的前端地址
	FrontendURL string `json:"frontend_url" yaml:"frontend_url"`
}
