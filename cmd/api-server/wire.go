//go:build wireinject
// +build wireinject

package main

import (
	"KMate/config"
	"KMate/dao"
	"KMate/handler"
	"KMate/pkg/client"
	"KMate/pkg/database"
	"KMate/pkg/server"
	"KMate/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *Provider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideIssuer,
		server.NewGinEngine,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Place), "*"),
		wire.Struct(new(handler.KBuzz), "*"),
		wire.Struct(new(handler.Tip), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Scrap), "*"),
		wire.Struct(new(handler.Bookmark), "*"),

		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(Provider), "*"),
	)
	return nil
}
