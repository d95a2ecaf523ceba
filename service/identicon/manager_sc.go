package identicon

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/motoki317/sc"
	"go.uber.org/zap"
)

// identiconは名前から一意に決まるので実質的に失効させない
const scTTL = 365 * 24 * time.Hour

// scManager github.com/motoki317/sc によるManager実装
//
// 同一キーの生成の集約とLRUによる追い出しはscに任せます。
type scManager struct {
	capacity int
	l        *zap.Logger
	cache    *sc.Cache[string, *Entry]

	requests     atomic.Uint64
	computations atomic.Uint64
	failures     atomic.Uint64
}

func newSCManager(capacity int, gen GenerateFunc, logger *zap.Logger) *scManager {
	m := &scManager{
		capacity: capacity,
		l:        logger,
	}
	m.cache = sc.NewMust(func(_ context.Context, name string) (*Entry, error) {
		m.l.Debug("cache missing", zap.String("name", name))
		m.computations.Add(1)
		e, err := gen(name)
		if err != nil {
			m.failures.Add(1)
			generations.WithLabelValues("failure").Inc()
			m.l.Warn("failed to generate identicon", zap.String("name", name), zap.Error(err))
			return nil, fmt.Errorf("failed to generate identicon: %w", err)
		}
		generations.WithLabelValues("success").Inc()
		return e, nil
	}, scTTL, scTTL, sc.WithLRUBackend(capacity))
	return m
}

func (m *scManager) Get(ctx context.Context, name string) (*Entry, error) {
	m.requests.Add(1)

	type result struct {
		e   *Entry
		err error
	}
	// scの生成処理を呼び出し元のキャンセルから切り離す
	ch := make(chan result, 1)
	go func() {
		e, err := m.cache.Get(context.WithoutCancel(ctx), name)
		ch <- result{e: e, err: err}
	}()

	select {
	case res := <-ch:
		return res.e, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stats 統計情報を返します
//
// scはエントリ数や追い出し数を公開しないため、Size, Evictionsは常に0です。
// 生成に至らなかったリクエストはHitsとして数えます。
func (m *scManager) Stats() Stats {
	requests := m.requests.Load()
	computations := m.computations.Load()
	var hits uint64
	if requests > computations {
		hits = requests - computations
	}
	return Stats{
		Backend:      BackendSC,
		Capacity:     m.capacity,
		Hits:         hits,
		Misses:       computations,
		Computations: computations,
		Failures:     m.failures.Load(),
	}
}
