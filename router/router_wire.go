//go:build wireinject
// +build wireinject

package router

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/traPtitech/identicon/service"
)

func newRouter(ss *service.Services, logger *zap.Logger, config *Config) *Router {
	wire.Build(
		service.ProviderSet,
		newEcho,
		wire.Struct(new(Handlers), "*"),
		wire.Struct(new(Router), "*"),
	)
	return nil
}
