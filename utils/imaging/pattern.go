package imaging

import "image/color"

// GridSize グリッドの一辺のセル数
const GridSize = 5

// Grid identiconの塗りパターン。Grid[row][col]がtrueのセルを塗ります
//
// 常に左右対称で、Grid[r][c] == Grid[r][GridSize-1-c]が成り立ちます。
type Grid [GridSize][GridSize]bool

// Pattern Digestから塗りパターンと前景色を導出します
//
// Digestを32個の4bit値の列として扱い、偶数の値を「塗る」とします。
// 列2から列0へ向かって、各列を行0から行4の順に1つずつ消費し、対称な列にも同じ値を写します。
// 消費するのは先頭の15個のみです。前景色は4bit列とは独立に11, 12, 15バイト目から決まります。
func Pattern(d Digest) (Grid, color.NRGBA) {
	var g Grid
	i := 0
	for c := GridSize / 2; c >= 0; c-- {
		for r := 0; r < GridSize; r++ {
			paint := d.nibble(i)%2 == 0
			g[r][c] = paint
			g[r][GridSize-1-c] = paint
			i++
		}
	}
	return g, foreground(d)
}
