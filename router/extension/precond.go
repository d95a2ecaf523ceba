package extension

import (
	"net/http"
	"net/textproto"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/traPtitech/identicon/router/consts"
)

const weakPrefix = "W/"

type condResult int

const (
	condNone condResult = iota
	condTrue
	condFalse
)

// scanETag 先頭のETagを読み取ります
//
// クォートされていないトークンもETagとして扱います。
func scanETag(s string) (eTag string, remain string) {
	s = textproto.TrimString(s)
	start := 0
	if strings.HasPrefix(s, weakPrefix) {
		start = 2
	}
	if len(s[start:]) == 0 {
		return "", ""
	}
	if s[start] != '"' {
		end := strings.IndexByte(s, ',')
		if end < 0 {
			end = len(s)
		}
		token := textproto.TrimString(s[start:end])
		if token == "" || strings.ContainsAny(token, "\" ") {
			return "", ""
		}
		return s[:start] + `"` + token + `"`, s[end:]
	}
	if len(s[start:]) < 2 {
		return "", ""
	}
	for i := start + 1; i < len(s); i++ {
		if s[i] == '"' {
			return s[:i+1], s[i+1:]
		}
	}
	return "", ""
}

func eTagStrongMatch(a, b string) bool {
	return a == b && a != "" && a[0] == '"'
}

func eTagWeakMatch(a, b string) bool {
	return strings.TrimPrefix(a, weakPrefix) == strings.TrimPrefix(b, weakPrefix)
}

func checkIfMatch(c echo.Context) condResult {
	im := c.Request().Header.Get(consts.HeaderIfMatch)
	if im == "" {
		return condNone
	}
	for {
		im = textproto.TrimString(im)
		if len(im) == 0 {
			break
		}
		if im[0] == ',' {
			im = im[1:]
			continue
		}
		if im[0] == '*' {
			return condTrue
		}
		eTag, remain := scanETag(im)
		if eTag == "" {
			break
		}
		if eTagStrongMatch(eTag, c.Response().Header().Get(consts.HeaderETag)) {
			return condTrue
		}
		im = remain
	}

	return condFalse
}

func checkIfNoneMatch(c echo.Context) condResult {
	inm := c.Request().Header.Get(consts.HeaderIfNoneMatch)
	if inm == "" {
		return condNone
	}
	buf := inm
	for {
		buf = textproto.TrimString(buf)
		if len(buf) == 0 {
			break
		}
		if buf[0] == ',' {
			buf = buf[1:]
			continue
		}
		if buf[0] == '*' {
			return condFalse
		}
		eTag, remain := scanETag(buf)
		if eTag == "" {
			break
		}
		if eTagWeakMatch(eTag, c.Response().Header().Get(consts.HeaderETag)) {
			return condFalse
		}
		buf = remain
	}
	return condTrue
}

func writeNotModified(c echo.Context) error {
	h := c.Response().Header()
	delete(h, echo.HeaderContentType)
	delete(h, echo.HeaderContentLength)
	return c.NoContent(http.StatusNotModified)
}

// CheckPreconditions HTTPリクエストの事前条件を検査します
func CheckPreconditions(c echo.Context) (done bool, err error) {
	if checkIfMatch(c) == condFalse {
		return true, c.NoContent(http.StatusPreconditionFailed)
	}

	if checkIfNoneMatch(c) == condFalse {
		if m := c.Request().Method; m == http.MethodGet || m == http.MethodHead {
			return true, writeNotModified(c)
		}
		return true, c.NoContent(http.StatusPreconditionFailed)
	}

	return false, nil
}

// ServeWithETag ETagを付与して返します。304を返せるときは304を返します。
//
// eTagはクォートされていないフィンガープリントです。
func ServeWithETag(c echo.Context, contentType string, eTag string, bytes []byte) error {
	c.Response().Header().Set(consts.HeaderETag, `"`+eTag+`"`)

	if done, err := CheckPreconditions(c); done {
		return err
	}
	return c.Blob(http.StatusOK, contentType, bytes)
}
