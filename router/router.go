package router

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/identicon/router/consts"
	"github.com/traPtitech/identicon/router/extension"
	"github.com/traPtitech/identicon/router/middlewares"
	"github.com/traPtitech/identicon/service"
)

type Router struct {
	e *echo.Echo
	h *Handlers
}

func Setup(ss *service.Services, logger *zap.Logger, config *Config) *echo.Echo {
	r := newRouter(ss, logger.Named("router"), config)

	api := r.e.Group("/api")
	api.GET("/metrics", echoprometheus.NewHandler())
	api.GET("/ping", r.h.Ping)
	api.GET("/stats", r.h.GetStats)

	// ブラウザが自動で要求するので生成させない
	r.e.Match([]string{http.MethodGet, http.MethodHead}, "/"+faviconName, r.h.NotFound)

	// GETとHEADで同じ上限を共有する
	limits := []echo.MiddlewareFunc{
		middlewares.ConcurrencyLimit(int64(config.Concurrency)),
		middlewares.Timeout(config.Timeout),
	}
	r.e.GET("/:"+consts.ParamName, r.h.GetIdenticon, limits...)
	r.e.HEAD("/:"+consts.ParamName, r.h.GetIdenticon, limits...)

	r.e.RouteNotFound("/*", r.h.NotFound)

	return r.e
}

func newEcho(logger *zap.Logger, config *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(logger)

	// ミドルウェア設定
	e.Use(middlewares.ServerVersion(config.Version))
	e.Use(middlewares.RequestID())
	if config.AccessLogging {
		e.Use(middlewares.AccessLogging(logger.Named("access_log"), config.Development))
	}
	e.Use(middlewares.Recovery(logger))
	if config.Gzipped {
		e.Use(middlewares.Gzip())
	}
	e.Use(middlewares.RequestCounter())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 "identicon",
		Registerer:                config.Registerer,
		DoNotUseRequestPathFor404: true,
	}))

	return e
}
