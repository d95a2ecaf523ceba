package identicon

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSCManager_Get(t *testing.T) {
	t.Parallel()

	t.Run("hit", func(t *testing.T) {
		t.Parallel()
		g := &testGenerator{}
		m := newSCManager(4, g.generate, zap.NewNop())

		e1, err := m.Get(context.Background(), "alice")
		require.NoError(t, err)
		e2, err := m.Get(context.Background(), "alice")
		require.NoError(t, err)

		assert.Same(t, e1, e2)
		assert.EqualValues(t, 1, g.calls.Load())
		s := m.Stats()
		assert.EqualValues(t, 1, s.Hits)
		assert.EqualValues(t, 1, s.Computations)
	})

	t.Run("failure is not cached", func(t *testing.T) {
		t.Parallel()
		g := &testGenerator{fail: func(_ string, n int) error {
			if n == 1 {
				return errMock
			}
			return nil
		}}
		m := newSCManager(4, g.generate, zap.NewNop())

		_, err := m.Get(context.Background(), "alice")
		assert.ErrorIs(t, err, errMock)

		e, err := m.Get(context.Background(), "alice")
		if assert.NoError(t, err) {
			assert.Equal(t, "etag-alice", e.ETag)
		}
		assert.Equal(t, 2, g.count("alice"))
		assert.EqualValues(t, 1, m.Stats().Failures)
	})
}

func TestSCManager_SingleFlight(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	g := &testGenerator{gate: func(string) <-chan struct{} { return release }}
	m := newSCManager(4, g.generate, zap.NewNop())

	const k = 20
	results := make([]*Entry, k)
	var wg sync.WaitGroup
	for i := range k {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := m.Get(context.Background(), "alice")
			assert.NoError(t, err)
			results[i] = e
		}()
	}
	require.Eventually(t, func() bool { return g.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, g.calls.Load())
	for i := range k {
		if assert.NotNil(t, results[i]) {
			assert.Equal(t, "etag-alice", results[i].ETag)
		}
	}
}

func TestSCManager_Cancel(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	g := &testGenerator{gate: func(string) <-chan struct{} { return release }}
	m := newSCManager(4, g.generate, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := m.Get(ctx, "alice")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	e, err := m.Get(context.Background(), "alice")
	if assert.NoError(t, err) {
		assert.Equal(t, "etag-alice", e.ETag)
	}
	assert.EqualValues(t, 1, g.calls.Load())
}

func TestSCManager_NonBlockingAcrossKeys(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	g := &testGenerator{gate: func(name string) <-chan struct{} {
		if name == "slow" {
			return release
		}
		return nil
	}}
	m := newSCManager(4, g.generate, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := m.Get(context.Background(), "slow")
		done <- err
	}()
	require.Eventually(t, func() bool { return g.count("slow") == 1 }, time.Second, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	e, err := m.Get(ctx, "fast")
	if assert.NoError(t, err) {
		assert.Equal(t, "etag-fast", e.ETag)
	}

	close(release)
	assert.NoError(t, <-done)
}

func TestSCManager_Eviction(t *testing.T) {
	t.Parallel()

	const capacity = 3
	g := &testGenerator{}
	m := newSCManager(capacity, g.generate, zap.NewNop())
	ctx := context.Background()

	for i := range capacity + 1 {
		_, err := m.Get(ctx, fmt.Sprintf("id%d", i))
		require.NoError(t, err)
	}

	// 残っているものは再生成されない
	for i := 1; i <= capacity; i++ {
		_, err := m.Get(ctx, fmt.Sprintf("id%d", i))
		require.NoError(t, err)
		assert.Equal(t, 1, g.count(fmt.Sprintf("id%d", i)))
	}

	// 追い出されたものは再生成される
	_, err := m.Get(ctx, "id0")
	require.NoError(t, err)
	assert.Equal(t, 2, g.count("id0"))
}

func TestSCManager_RecencyRefresh(t *testing.T) {
	t.Parallel()

	const capacity = 3
	g := &testGenerator{}
	m := newSCManager(capacity, g.generate, zap.NewNop())
	ctx := context.Background()

	for _, name := range []string{"x", "a", "b"} {
		_, err := m.Get(ctx, name)
		require.NoError(t, err)
	}
	_, err := m.Get(ctx, "x")
	require.NoError(t, err)
	_, err = m.Get(ctx, "c")
	require.NoError(t, err)

	// xは参照し直したので残り、aが追い出される
	_, err = m.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 1, g.count("x"))

	_, err = m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, g.count("a"))
}
