package imaging

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// 生成されるPNGは概ね1KB前後
const encodeBufSize = 3 << 10

// Encode 画像をPNGにエンコードします
//
// 同じ画像からは常に同じバイト列が得られます。
func Encode(img image.Image) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, encodeBufSize))
	if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Fingerprint エンコード済み画像のETag用ハッシュ(hex)を返します
func Fingerprint(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}
