package imaging

import "image/color"

// Background 背景色
var Background = color.NRGBA{R: 240, G: 240, B: 240, A: 255}

// darkColors 前景色のパレット
var darkColors = []color.NRGBA{
	{R: 0x16, G: 0xa0, B: 0x85, A: 0xff},
	{R: 0x27, G: 0xae, B: 0x60, A: 0xff},
	{R: 0x29, G: 0x80, B: 0xb9, A: 0xff},
	{R: 0x8e, G: 0x44, B: 0xad, A: 0xff},
	{R: 0x2c, G: 0x3e, B: 0x50, A: 0xff},
	{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff},
	{R: 0xd3, G: 0x54, B: 0x00, A: 0xff},
	{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff},
	{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff},
	{R: 0x34, G: 0x49, B: 0x5e, A: 0xff},
}

// foreground Digestから前景色を選びます
func foreground(d Digest) color.NRGBA {
	return darkColors[(int(d[11])+int(d[12])+int(d[15]))%len(darkColors)]
}
