package imaging

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
		{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			d := Sum([]byte(tt.in))
			assert.Equal(t, tt.want, hex.EncodeToString(d[:]))
			assert.Equal(t, d, Sum([]byte(tt.in)))
		})
	}
}

func TestDigest_nibble(t *testing.T) {
	t.Parallel()

	d := Digest{0xab, 0xcd}
	assert.EqualValues(t, 0xa, d.nibble(0))
	assert.EqualValues(t, 0xb, d.nibble(1))
	assert.EqualValues(t, 0xc, d.nibble(2))
	assert.EqualValues(t, 0xd, d.nibble(3))
	assert.EqualValues(t, 0x0, d.nibble(31))
}
