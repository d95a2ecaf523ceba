package consts

const (
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderIfMatch      = "If-Match"
	HeaderIfNoneMatch  = "If-None-Match"
	HeaderVersion      = "X-IDENTICON-VERSION"
)

const (
	// CacheControlIdenticon identiconはnameから一意に決まるので長期間キャッシュさせる
	CacheControlIdenticon = "public, max-age=30672000"
	// MimeImagePNG PNG画像のContent-Type
	MimeImagePNG = "image/png"
)
