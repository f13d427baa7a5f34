//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/bionicotaku/lingo-services-greeting/internal/controllers"
	loader "github.com/bionicotaku/lingo-services-greeting/internal/infrastructure/config_loader"
	"github.com/bionicotaku/lingo-services-greeting/internal/server"
	"github.com/bionicotaku/lingo-services-greeting/internal/services"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init kratos application.
func wireApp(*loader.Loader, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(loader.ProviderSet, server.ProviderSet, controllers.ProviderSet, services.ProviderSet, newApp))
}
