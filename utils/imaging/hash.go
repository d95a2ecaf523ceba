package imaging

import "crypto/md5"

// DigestSize Digestのバイト長
const DigestSize = md5.Size

// Digest identiconの生成元となるハッシュ値
type Digest [DigestSize]byte

// Sum 任意のバイト列からDigestを計算します
//
// 出力は決定的なシードとしてのみ使われ、暗号学的な性質は要求しません。
func Sum(b []byte) Digest {
	return md5.Sum(b)
}

// nibble i番目の4bit値を返します。各バイトの上位4bitが下位4bitより先に来ます
func (d Digest) nibble(i int) byte {
	b := d[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0f
}
