package imaging

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern(t *testing.T) {
	t.Parallel()

	t.Run("all even", func(t *testing.T) {
		t.Parallel()
		g, fg := Pattern(Digest{})
		for r := range GridSize {
			for c := range GridSize {
				assert.True(t, g[r][c], "(%d, %d)", r, c)
			}
		}
		assert.Equal(t, darkColors[0], fg)
	})

	t.Run("all odd", func(t *testing.T) {
		t.Parallel()
		var d Digest
		for i := range d {
			d[i] = 0xff
		}
		g, fg := Pattern(d)
		assert.Equal(t, Grid{}, g)
		assert.Equal(t, darkColors[(0xff*3)%len(darkColors)], fg)
	})

	t.Run("abc", func(t *testing.T) {
		t.Parallel()
		// 900150983cd24fb0d6963f7d28e17f72
		g, fg := Pattern(Sum([]byte("abc")))
		want := Grid{
			{false, true, false, true, false},
			{true, false, true, false, true},
			{true, true, true, true, true},
			{false, false, false, false, false},
			{false, true, false, true, false},
		}
		assert.Equal(t, want, g)
		assert.Equal(t, darkColors[(0x7d+0x28+0x72)%len(darkColors)], fg)
	})

	t.Run("color ignores nibble stream", func(t *testing.T) {
		t.Parallel()
		var a, b Digest
		b[0] = 0x11 // 形だけが変わる
		ga, fa := Pattern(a)
		gb, fb := Pattern(b)
		assert.NotEqual(t, ga, gb)
		assert.Equal(t, fa, fb)

		b = Digest{}
		b[11] = 1 // 色だけが変わる
		gb, fb = Pattern(b)
		assert.Equal(t, ga, gb)
		assert.NotEqual(t, fa, fb)
	})

	t.Run("unused nibbles", func(t *testing.T) {
		t.Parallel()
		var d Digest
		d[7] = 0x01 // index 15の4bit値は使われない
		for i := 8; i < DigestSize; i++ {
			if i != 11 && i != 12 && i != 15 {
				d[i] = 0xff
			}
		}
		g, _ := Pattern(d)
		gz, _ := Pattern(Digest{})
		assert.Equal(t, gz, g)
	})
}

func TestPattern_Mirror(t *testing.T) {
	t.Parallel()

	for i := range 500 {
		g, _ := Pattern(Sum([]byte(strconv.Itoa(i))))
		for r := range GridSize {
			for c := range GridSize {
				if g[r][c] != g[r][GridSize-1-c] {
					t.Fatalf("grid for %d is not mirrored at (%d, %d)", i, r, c)
				}
			}
		}
	}
}
