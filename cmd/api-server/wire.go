//go:build wireinject
// +build wireinject

package main

import (
	"AutoSync/config"
	"AutoSync/dao"
	"AutoSync/handler"
	"AutoSync/pkg/client"
	"AutoSync/pkg/database"
	"AutoSync/pkg/objectstore"
	"AutoSync/pkg/server"
	"AutoSync/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideCleanupConfig,
		objectstore.NewOSS,

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
