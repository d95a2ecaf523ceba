package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/traPtitech/identicon/service"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	cmd := cobra.Command{
		Use:   "serve",
		Short: "Serve identicon images",
		Run: func(_ *cobra.Command, _ []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("identicon %s (revision %s)", Version, Revision))

			if err := c.validate(); err != nil {
				logger.Fatal("invalid config", zap.Error(err))
			}

			// Stackdriver Profiler
			if c.GCP.Stackdriver.Profiler.Enabled {
				if err := initStackdriverProfiler(&c); err != nil {
					logger.Fatal("failed to setup Stackdriver Profiler", zap.Error(err))
				}
				logger.Info("stackdriver profiler started")
			}

			// サーバー作成
			server, err := newServer(logger, &c)
			if err != nil {
				logger.Fatal("failed to create server", zap.Error(err))
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				if err := server.Start(c.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()
				logger.Info("identicon shutting down...")

				sctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
				defer cancel()
				return server.Shutdown(sctx)
			})

			logger.Info("identicon started", zap.String("addr", c.Addr))
			if err := eg.Wait(); err != nil {
				logger.Fatal("abnormal shutdown", zap.Error(err))
			}
			logger.Info("identicon shutdown")
		},
	}

	flags := cmd.Flags()
	flags.String("addr", defaultAddr, "listen address")
	bindPFlag(flags, "addr")
	flags.Int("concurrency", defaultConcurrency, "maximum number of identicon requests served at once")
	bindPFlag(flags, "concurrency")
	flags.Duration("timeout", defaultTimeout, "identicon request timeout")
	bindPFlag(flags, "timeout")
	flags.Int("cache-capacity", defaultCacheCapacity, "maximum number of cached identicons")
	bindPFlag(flags, "cache.capacity", "cache-capacity")

	return &cmd
}

type Server struct {
	L      *zap.Logger
	SS     *service.Services
	Router *echo.Echo
}

func (s *Server) Start(address string) error {
	return s.Router.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Router.Shutdown(ctx)
	s.L.Info("Router shutdown", zap.Any("cache", s.SS.Identicon.Stats()))
	return err
}
