//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package identicon

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/traPtitech/identicon/utils/imaging"
)

const (
	// BackendLRU 組み込みのLRUテーブル + per-key single-flight
	BackendLRU = "lru"
	// BackendSC github.com/motoki317/sc のLRUバックエンド
	BackendSC = "sc"
)

var (
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
	ErrUnknownBackend  = errors.New("unknown cache backend")
)

// Entry 生成済みのidenticon
//
// 生成後は読み取り専用で、複数のリクエスト間でコピーせずに共有されます。
type Entry struct {
	// Image PNG画像
	Image []byte
	// ETag Imageのフィンガープリント (クォートなし)
	ETag string
}

// Stats キャッシュの統計情報
type Stats struct {
	Backend      string `json:"backend"`
	Capacity     int    `json:"capacity"`
	Size         int    `json:"size"`
	Hits         uint64 `json:"hits"`
	Misses       uint64 `json:"misses"`
	Evictions    uint64 `json:"evictions"`
	Computations uint64 `json:"computations"`
	Failures     uint64 `json:"failures"`
}

type Manager interface {
	// Get nameのidenticonを返します。キャッシュに無い場合は生成します
	//
	// 同じnameに対する同時呼び出しは1回の生成にまとめられます。
	// ctxが先に終了した場合はctx.Err()を返しますが、生成は継続しキャッシュされます。
	Get(ctx context.Context, name string) (*Entry, error)
	// Stats 統計情報を返します
	Stats() Stats
}

// Config キャッシュ設定
type Config struct {
	// Capacity 最大エントリ数
	Capacity int
	// Backend BackendLRU または BackendSC
	Backend string
}

// GenerateFunc identiconの生成関数
type GenerateFunc func(name string) (*Entry, error)

// Generate identiconを生成します
func Generate(name string) (*Entry, error) {
	b, err := imaging.GenerateIcon(name)
	if err != nil {
		return nil, err
	}
	return &Entry{Image: b, ETag: imaging.Fingerprint(b)}, nil
}

// NewManager Managerを生成します
func NewManager(c Config, logger *zap.Logger) (Manager, error) {
	return newManager(c, Generate, logger.Named("identicon_manager"))
}

func newManager(c Config, gen GenerateFunc, logger *zap.Logger) (Manager, error) {
	if c.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	switch c.Backend {
	case BackendLRU, "":
		return newLRUManager(c.Capacity, gen, logger), nil
	case BackendSC:
		return newSCManager(c.Capacity, gen, logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, c.Backend)
	}
}
