package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	// IconSize 生成する画像の一辺のピクセル数
	IconSize = 290
	// cellSize 1セルのピクセル数
	cellSize = IconSize / (GridSize + 1)
	// margin キャンバス端からグリッドまでの余白
	margin = cellSize / 2
)

// Render Gridを画像に描画します
func Render(g Grid, fg color.Color) *image.NRGBA {
	img := imaging.New(IconSize, IconSize, Background)
	src := image.NewUniform(fg)
	for r := range GridSize {
		for c := range GridSize {
			if !g[r][c] {
				continue
			}
			draw.Draw(img, cellRect(r, c), src, image.Point{}, draw.Src)
		}
	}
	return img
}

func cellRect(r, c int) image.Rectangle {
	x := c*cellSize + margin
	y := r*cellSize + margin
	return image.Rect(x, y, x+cellSize, y+cellSize)
}
