package extension

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

// JSON encoding/jsonの代わりにjsoniterでレスポンスを書き込みます
func JSON(c echo.Context, code int, i interface{}) error {
	if _, pretty := c.QueryParams()["pretty"]; pretty {
		return c.JSONPretty(code, i, "  ")
	}
	return json(c, code, i, jsoniter.ConfigFastest)
}

func json(c echo.Context, code int, i interface{}, cfg jsoniter.API) error {
	stream := cfg.BorrowStream(c.Response())
	defer cfg.ReturnStream(stream)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	c.Response().WriteHeader(code)
	stream.WriteVal(i)
	stream.WriteRaw("\n")
	return stream.Flush()
}
