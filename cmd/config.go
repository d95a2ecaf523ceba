package cmd

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/profiler"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"google.golang.org/api/option"

	"github.com/traPtitech/identicon/router"
	"github.com/traPtitech/identicon/service/identicon"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`

	// Addr 待ち受けアドレス (default: 127.0.0.1:8080)
	Addr string `mapstructure:"addr" yaml:"addr"`
	// Concurrency identiconリクエストの同時処理数の上限 (default: 1024)
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency"`
	// Timeout identiconリクエストの処理時間の上限 (default: 10s)
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// ShutdownTimeout シャットダウン時の待ち時間(秒) (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// Cache identiconキャッシュ設定
	Cache struct {
		// Capacity 最大エントリ数 (default: 64)
		Capacity int `mapstructure:"capacity" yaml:"capacity"`
		// Backend キャッシュ実装 lru or sc (default: lru)
		Backend string `mapstructure:"backend" yaml:"backend"`
	} `mapstructure:"cache" yaml:"cache"`

	// GCP Google Cloud Platform設定
	GCP struct {
		// ServiceAccount サービスアカウント
		ServiceAccount struct {
			// ProjectID プロジェクトID
			ProjectID string `mapstructure:"projectId" yaml:"projectId"`
			// File クレデンシャルファイルパス
			File string `mapstructure:"file" yaml:"file"`
		} `mapstructure:"serviceAccount" yaml:"serviceAccount"`
		// Stackdriver Stackdriver設定
		Stackdriver struct {
			// Profiler Stackdriver Profiler設定
			Profiler struct {
				// Enabled 有効かどうか (default: false)
				Enabled bool `mapstructure:"enabled" yaml:"enabled"`
			} `mapstructure:"profiler" yaml:"profiler"`
		} `mapstructure:"stackdriver" yaml:"stackdriver"`
	} `mapstructure:"gcp" yaml:"gcp"`
}

const (
	defaultAddr          = "127.0.0.1:8080"
	defaultConcurrency   = 1024
	defaultTimeout       = 10 * time.Second
	defaultCacheCapacity = 64
)

func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("addr", defaultAddr)
	viper.SetDefault("concurrency", defaultConcurrency)
	viper.SetDefault("timeout", defaultTimeout.String())
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("gzip", true)
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("cache.capacity", defaultCacheCapacity)
	viper.SetDefault("cache.backend", identicon.BackendLRU)
	viper.SetDefault("gcp.serviceAccount.projectId", "")
	viper.SetDefault("gcp.serviceAccount.file", "")
	viper.SetDefault("gcp.stackdriver.profiler.enabled", false)
}

var (
	errInvalidConcurrency = errors.New("concurrency must be positive")
	errInvalidTimeout     = errors.New("timeout must be positive")
)

// validate 起動前に設定値を検証します
func (c *Config) validate() error {
	if c.Concurrency < 1 {
		return errInvalidConcurrency
	}
	if c.Timeout <= 0 {
		return errInvalidTimeout
	}
	if c.Cache.Capacity < 1 {
		return identicon.ErrInvalidCapacity
	}
	if !lo.Contains([]string{identicon.BackendLRU, identicon.BackendSC}, c.Cache.Backend) {
		return fmt.Errorf("%w: %s", identicon.ErrUnknownBackend, c.Cache.Backend)
	}
	return nil
}

func initStackdriverProfiler(c *Config) error {
	return profiler.Start(profiler.Config{
		Service:        "identicon",
		ServiceVersion: fmt.Sprintf("%s.%s", Version, Revision),
		ProjectID:      c.GCP.ServiceAccount.ProjectID,
	}, option.WithCredentialsFile(c.GCP.ServiceAccount.File))
}

func provideIdenticonConfig(c *Config) identicon.Config {
	return identicon.Config{
		Capacity: c.Cache.Capacity,
		Backend:  c.Cache.Backend,
	}
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:   c.DevMode,
		Version:       Version,
		Revision:      Revision,
		AccessLogging: c.AccessLog.Enabled,
		Gzipped:       c.Gzip,
		Concurrency:   c.Concurrency,
		Timeout:       c.Timeout,
	}
}
