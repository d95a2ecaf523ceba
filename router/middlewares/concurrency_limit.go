package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/semaphore"

	"github.com/traPtitech/identicon/router/extension/herror"
)

var rejectedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "identicon",
	Name:      "http_requests_rejected_total",
})

// ConcurrencyLimit 同時に処理するリクエスト数をnに制限するミドルウェア
//
// 上限に達している場合は待たずに503を返します。
func ConcurrencyLimit(n int64) echo.MiddlewareFunc {
	sem := semaphore.NewWeighted(n)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sem.TryAcquire(1) {
				rejectedCounter.Inc()
				return herror.ServiceUnavailable()
			}
			defer sem.Release(1)
			return next(c)
		}
	}
}
