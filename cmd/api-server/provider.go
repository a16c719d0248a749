package main

import (
	"KMate/pkg/server"

	"gorm.io/gorm"
)

// Provider serve 命令需要的全部依赖
type Provider struct {
	App *server.AppProvider
	DB  *gorm.DB
}
