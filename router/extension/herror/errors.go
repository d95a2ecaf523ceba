package herror

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/identicon/router/consts"
)

func NotFound(err ...interface{}) error {
	if len(err) == 0 {
		return HTTPError(http.StatusNotFound, consts.MessageNotFound)
	}
	return HTTPError(http.StatusNotFound, err)
}

func RequestTimeout(err ...interface{}) error {
	if len(err) == 0 {
		return HTTPError(http.StatusRequestTimeout, consts.MessageRequestTimeout)
	}
	return HTTPError(http.StatusRequestTimeout, err)
}

func ServiceUnavailable(err ...interface{}) error {
	if len(err) == 0 {
		return HTTPError(http.StatusServiceUnavailable, consts.MessageOverloaded)
	}
	return HTTPError(http.StatusServiceUnavailable, err)
}

func HTTPError(code int, err interface{}) error {
	switch v := err.(type) {
	case []interface{}:
		if len(v) > 0 {
			return HTTPError(code, v[0])
		}
		return HTTPError(code, nil)
	case string:
		return echo.NewHTTPError(code, v)
	case error:
		return echo.NewHTTPError(code, v.Error()).SetInternal(v)
	case nil:
		return echo.NewHTTPError(code)
	default:
		return echo.NewHTTPError(code, v)
	}
}
