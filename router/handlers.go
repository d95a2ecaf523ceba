package router

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/traPtitech/identicon/router/consts"
	"github.com/traPtitech/identicon/router/extension"
	"github.com/traPtitech/identicon/router/extension/herror"
	"github.com/traPtitech/identicon/service/identicon"
)

var errMultiSegment = errors.New("name must be a single path segment")

// Handlers identiconハンドラ
type Handlers struct {
	Identicon identicon.Manager
	Logger    *zap.Logger
}

// GetIdenticon GET /:name
func (h *Handlers) GetIdenticon(c echo.Context) error {
	name, err := paramName(c)
	if err != nil || !isIdenticonName(name) {
		return herror.NotFound()
	}

	ctx := c.Request().Context()
	e, err := h.Identicon.Get(ctx, name)
	if err != nil {
		// 期限切れはTimeoutミドルウェアが408に変換する
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return herror.InternalServerError(err)
	}

	c.Response().Header().Set(consts.HeaderCacheControl, consts.CacheControlIdenticon)
	return extension.ServeWithETag(c, consts.MimeImagePNG, e.ETag, e.Image)
}

// NotFound 404を返すハンドラ
func (h *Handlers) NotFound(_ echo.Context) error {
	return herror.NotFound()
}

// Ping GET /api/ping
func (h *Handlers) Ping(c echo.Context) error {
	return c.String(http.StatusOK, http.StatusText(http.StatusOK))
}

// GetStats GET /api/stats
func (h *Handlers) GetStats(c echo.Context) error {
	return extension.JSON(c, http.StatusOK, h.Identicon.Stats())
}

// faviconName ブラウザが自動で要求するパス。生成させない
const faviconName = "favicon.ico"

// isIdenticonName デコード済みのnameがidenticonを返す対象かどうか
//
// echoの末尾パラメータは"/"を跨いでマッチするため、複数セグメントのパスはここで弾きます。
func isIdenticonName(name string) bool {
	return len(name) > 0 && name != faviconName && !strings.Contains(name, "/")
}

// paramName パスパラメータの識別子を返します
//
// エスケープされたパスではechoはパラメータをデコードしないため、ここでデコードします。
func paramName(c echo.Context) (string, error) {
	name := c.Param(consts.ParamName)
	if strings.Contains(name, "/") {
		return "", errMultiSegment
	}
	if len(c.Request().URL.RawPath) == 0 {
		return name, nil
	}
	return url.PathUnescape(name)
}
