package imaging

// GenerateIcon nameからidenticonを生成し、PNGのバイト列を返します
func GenerateIcon(name string) ([]byte, error) {
	g, fg := Pattern(Sum([]byte(name)))
	return Encode(Render(g, fg))
}
