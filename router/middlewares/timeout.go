package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/traPtitech/identicon/router/extension/herror"
)

// Timeout リクエストのコンテキストにdの期限を設定するミドルウェア
//
// 期限切れでハンドラが返したエラーは408に変換されます。
func Timeout(d time.Duration) echo.MiddlewareFunc {
	return middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: d,
		ErrorHandler: func(err error, _ echo.Context) error {
			if errors.Is(err, context.DeadlineExceeded) {
				return herror.RequestTimeout()
			}
			return err
		},
	})
}
