package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App    *App    `json:"app" yaml:"app"`
	Server *Server `json:"server" yaml:"server"`
	MySQL  *MySQL  `json:"mysql" yaml:"mysql"`
	Redis  *Redis  `json:"redis" yaml:"redis"`
	Jwt    *Jwt    `json:"jwt" yaml:"jwt"`
	Google *Google `json:"google" yaml:"google"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
	// 每个 IP 对 /auth 接口的每秒请求数
	AuthRateLimit int `json:"auth_rate_limit" yaml:"auth_rate_limit"`
}

// New 读取 yaml 配置，支持 ${ENV} 占位符
func New(filename string) *Config {
	// .env 不存在时忽略
	_ = godotenv.Load()

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	return conf
}

// Parse 解析配置内容并补全默认值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), &conf); err != nil {
		return nil, err
	}
	conf.fillDefaults()
	return &conf, nil
}

func (c *Config) fillDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.FrontendURL == "" {
		c.App.FrontendURL = "http://localhost:5173"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 3000
	}
	if c.Server.AuthRateLimit == 0 {
		c.Server.AuthRateLimit = 5
	}
	if c.MySQL == nil {
		c.MySQL = &MySQL{}
	}
	c.MySQL.fillDefaults()
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Redis.Address == "" {
		c.Redis.Address = "127.0.0.1"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Jwt.ExpiresIn == 0 {
		c.Jwt.ExpiresIn = 3600
	}
	if c.Jwt.RefreshExpiresIn == 0 {
		c.Jwt.RefreshExpiresIn = 7 * 24 * 3600
	}
	if c.Google == nil {
		c.Google = &Google{}
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
