//go:build wireinject
// +build wireinject

package cmd

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/traPtitech/identicon/router"
	"github.com/traPtitech/identicon/service"
	"github.com/traPtitech/identicon/service/identicon"
)

func newServer(logger *zap.Logger, c *Config) (*Server, error) {
	wire.Build(
		identicon.NewManager,
		router.Setup,
		provideIdenticonConfig,
		provideRouterConfig,
		wire.Struct(new(service.Services), "*"),
		wire.Struct(new(Server), "*"),
	)
	return nil, nil
}
