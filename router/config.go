package router

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config APIサーバー設定
type Config struct {
	// 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// Gzipped レスポンスをGzip圧縮するかどうか
	Gzipped bool
	// Concurrency identiconリクエストの同時処理数の上限
	Concurrency int
	// Timeout identiconリクエストの処理時間の上限
	Timeout time.Duration
	// Registerer HTTPメトリクスの登録先 (nilの場合はprometheus.DefaultRegisterer)
	Registerer prometheus.Registerer
}
