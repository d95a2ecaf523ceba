package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/traPtitech/identicon/service/identicon"
)

func validConfig() Config {
	var c Config
	c.Addr = defaultAddr
	c.Concurrency = defaultConcurrency
	c.Timeout = defaultTimeout
	c.Cache.Capacity = defaultCacheCapacity
	c.Cache.Backend = identicon.BackendLRU
	return c
}

func TestConfig_validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{name: "default", modify: func(_ *Config) {}},
		{name: "sc backend", modify: func(c *Config) { c.Cache.Backend = identicon.BackendSC }},
		{name: "zero concurrency", modify: func(c *Config) { c.Concurrency = 0 }, want: errInvalidConcurrency},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, want: errInvalidTimeout},
		{name: "negative timeout", modify: func(c *Config) { c.Timeout = -time.Second }, want: errInvalidTimeout},
		{name: "zero capacity", modify: func(c *Config) { c.Cache.Capacity = 0 }, want: identicon.ErrInvalidCapacity},
		{name: "unknown backend", modify: func(c *Config) { c.Cache.Backend = "redis" }, want: identicon.ErrUnknownBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := validConfig()
			tt.modify(&c)
			err := c.validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestProvideConfigs(t *testing.T) {
	t.Parallel()

	c := validConfig()
	c.DevMode = true
	c.Gzip = true
	c.AccessLog.Enabled = true
	c.Cache.Backend = identicon.BackendSC

	ic := provideIdenticonConfig(&c)
	assert.Equal(t, identicon.Config{Capacity: defaultCacheCapacity, Backend: identicon.BackendSC}, ic)

	rc := provideRouterConfig(&c)
	assert.True(t, rc.Development)
	assert.True(t, rc.Gzipped)
	assert.True(t, rc.AccessLogging)
	assert.Equal(t, defaultConcurrency, rc.Concurrency)
	assert.Equal(t, defaultTimeout, rc.Timeout)
	assert.Equal(t, Version, rc.Version)
}

func TestPingURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr string
		want string
	}{
		{addr: "127.0.0.1:8080", want: "http://127.0.0.1:8080/api/ping"},
		{addr: ":8080", want: "http://localhost:8080/api/ping"},
		{addr: "0.0.0.0:3000", want: "http://localhost:3000/api/ping"},
		{addr: "[::]:3000", want: "http://localhost:3000/api/ping"},
		{addr: "[::1]:3000", want: "http://[::1]:3000/api/ping"},
	}
	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			t.Parallel()
			got, err := pingURL(tt.addr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := pingURL("8080")
	assert.Error(t, err)
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	c := validConfig()
	s, err := newServer(zap.NewNop(), &c)
	require.NoError(t, err)
	assert.NotNil(t, s.Router)
	assert.Equal(t, identicon.BackendLRU, s.SS.Identicon.Stats().Backend)

	c.Cache.Capacity = 0
	_, err = newServer(zap.NewNop(), &c)
	assert.ErrorIs(t, err, identicon.ErrInvalidCapacity)
}
