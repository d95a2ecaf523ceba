package identicon

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type lruItem struct {
	name  string
	entry *Entry
}

// lruManager 最近使われていないものから捨てる容量制限付きテーブル
//
// muはテーブルの操作のみを保護し、生成処理の間は保持しません。
// 生成はsfによってnameごとに1つにまとめられます。
type lruManager struct {
	capacity int
	generate GenerateFunc
	l        *zap.Logger

	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // 先頭が最も最近使われたもの

	sf singleflight.Group

	hits         atomic.Uint64
	misses       atomic.Uint64
	evictions    atomic.Uint64
	computations atomic.Uint64
	failures     atomic.Uint64
}

func newLRUManager(capacity int, gen GenerateFunc, logger *zap.Logger) *lruManager {
	return &lruManager{
		capacity: capacity,
		generate: gen,
		l:        logger,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

func (m *lruManager) Get(ctx context.Context, name string) (*Entry, error) {
	if e, ok := m.lookup(name); ok {
		m.hits.Add(1)
		cacheLookups.WithLabelValues("hit").Inc()
		return e, nil
	}
	m.misses.Add(1)
	cacheLookups.WithLabelValues("miss").Inc()

	// DoChanは別goroutineで生成するので、呼び出し元のctxが終了しても生成は完了してキャッシュされる
	ch := m.sf.DoChan(name, func() (interface{}, error) {
		return m.load(name)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Entry), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *lruManager) load(name string) (*Entry, error) {
	// 直前のラウンドがlookupとDoChanの間に完了していた場合
	if e, ok := m.lookup(name); ok {
		return e, nil
	}

	m.l.Debug("cache missing", zap.String("name", name))
	m.computations.Add(1)
	e, err := m.generate(name)
	if err != nil {
		m.failures.Add(1)
		generations.WithLabelValues("failure").Inc()
		m.l.Warn("failed to generate identicon", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to generate identicon: %w", err)
	}
	generations.WithLabelValues("success").Inc()

	m.insert(name, e)
	return e, nil
}

// lookup nameのエントリを返し、最近使われたものとして記録します
func (m *lruManager) lookup(name string) (*Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	el, ok := m.entries[name]
	if !ok {
		return nil, false
	}
	m.order.MoveToFront(el)
	return el.Value.(*lruItem).entry, true
}

func (m *lruManager) insert(name string, e *Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.entries[name]; ok {
		el.Value.(*lruItem).entry = e
		m.order.MoveToFront(el)
		return
	}
	m.entries[name] = m.order.PushFront(&lruItem{name: name, entry: e})

	for m.order.Len() > m.capacity {
		oldest := m.order.Back()
		item := m.order.Remove(oldest).(*lruItem)
		delete(m.entries, item.name)
		m.evictions.Add(1)
		cacheEvictions.Inc()
		m.l.Debug("cache evicted", zap.String("name", item.name))
	}
}

func (m *lruManager) Stats() Stats {
	m.mu.Lock()
	size := m.order.Len()
	m.mu.Unlock()

	return Stats{
		Backend:      BackendLRU,
		Capacity:     m.capacity,
		Size:         size,
		Hits:         m.hits.Load(),
		Misses:       m.misses.Load(),
		Evictions:    m.evictions.Load(),
		Computations: m.computations.Load(),
		Failures:     m.failures.Load(),
	}
}
