package extension

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/identicon/router/consts"
	"github.com/traPtitech/identicon/router/extension/herror"
)

// ErrorHandler カスタムエラーハンドラ
//
// エラーレスポンスは全てtext/plainで返します。
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(e error, c echo.Context) {
		// クライアントが切断済みなので応答は書かない
		if errors.Is(e, context.Canceled) {
			logger.Debug("request canceled by client", zap.String("requestId", GetRequestID(c)), zap.Error(e))
			return
		}

		var (
			code int
			body string
		)

		switch err := e.(type) {
		case nil:
			return
		case *echo.HTTPError:
			if err.Internal != nil {
				if herr, ok := err.Internal.(*echo.HTTPError); ok {
					err = herr
				}
			}
			code = err.Code
			switch m := err.Message.(type) {
			case string:
				body = m
			case error:
				body = m.Error()
			default:
				body = http.StatusText(code)
			}
			if code == http.StatusNotFound {
				body = consts.MessageNotFound
			}
		case *herror.InternalError:
			logger.Error(err.Err.Error(), append(err.Fields, zap.String("requestId", GetRequestID(c)), zap.Bool("panic", err.Panic))...)
			code = http.StatusInternalServerError
			body = fmt.Sprintf(consts.MessageInternalErrorFmt, err.Err)
		default:
			logger.Error(err.Error(), zap.String("requestId", GetRequestID(c)))
			code = http.StatusInternalServerError
			body = fmt.Sprintf(consts.MessageInternalErrorFmt, err)
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				e = c.NoContent(code)
			} else {
				e = c.String(code, body)
			}
			if e != nil {
				logger.Warn("failed to send error response", zap.Error(e), zap.String("requestId", GetRequestID(c)))
			}
		}
	}
}
