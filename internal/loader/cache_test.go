package loader_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/factory"
	"github.com/vk/modfactory/internal/loader"
)

// namedFactory is a distinguishable module factory.
type namedFactory struct{ name string }

func (f *namedFactory) AttemptCreate(className, _ string) any {
	return f.name + ":" + className
}

// countingSource opens a fresh namedFactory for every name in known and
// counts how many times each name was opened.
type countingSource struct {
	known map[string]bool
	delay time.Duration

	mu     sync.Mutex
	opened map[string]int
}

func newCountingSource(names ...string) *countingSource {
	s := &countingSource{known: map[string]bool{}, opened: map[string]int{}}
	for _, n := range names {
		s.known[n] = true
	}
	return s
}

func (s *countingSource) Open(_ context.Context, name string) (factory.ModuleFactory, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	s.opened[name]++
	s.mu.Unlock()
	if !s.known[name] {
		return nil, errors.New("unknown module")
	}
	return &namedFactory{name: name}, nil
}

func (s *countingSource) count(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opened[name]
}

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func TestCache_MemoizesPerName(t *testing.T) {
	t.Parallel()

	src := newCountingSource("core", "ext")
	cache := loader.NewCache(src)
	ctx := testCtx()

	a := cache.Acquire(ctx, "core")
	b := cache.Acquire(ctx, "core")
	require.Same(t, a, b, "the same name must yield the same loaded module")
	require.Equal(t, 1, src.count("core"))
	require.Equal(t, 2, cache.Refs("core"))

	ext := cache.Acquire(ctx, "ext")
	require.NotSame(t, a, ext)
	require.Equal(t, []string{"core", "ext"}, cache.Loaded())
}

func TestCache_UnavailableModuleIsNop(t *testing.T) {
	t.Parallel()

	src := newCountingSource()
	cache := loader.NewCache(src)

	f := cache.Acquire(testCtx(), "libmissing.so")
	require.Equal(t, factory.Nop, f)
	require.Nil(t, f.AttemptCreate("Foo", "IFoo"))

	// The failure is memoized as well.
	require.Equal(t, factory.Nop, cache.Acquire(testCtx(), "libmissing.so"))
	require.Equal(t, 1, src.count("libmissing.so"))
}

func TestCache_NoSources(t *testing.T) {
	t.Parallel()

	cache := loader.NewCache(nil, nil)
	require.Equal(t, factory.Nop, cache.Acquire(testCtx(), "core"))
}

func TestCache_SourcesTriedInOrder(t *testing.T) {
	t.Parallel()

	first := newCountingSource("shadowed")
	second := newCountingSource("shadowed", "fallthrough")
	cache := loader.NewCache(first, second)
	ctx := testCtx()

	require.Equal(t, "shadowed:X", cache.Acquire(ctx, "shadowed").AttemptCreate("X", "IX"))
	assert.Equal(t, 1, first.count("shadowed"))
	assert.Equal(t, 0, second.count("shadowed"), "later sources are not consulted after a success")

	require.Equal(t, "fallthrough:X", cache.Acquire(ctx, "fallthrough").AttemptCreate("X", "IX"))
	assert.Equal(t, 1, first.count("fallthrough"))
	assert.Equal(t, 1, second.count("fallthrough"))
}

func TestCache_NilFactoryFromSourceFallsThrough(t *testing.T) {
	t.Parallel()

	empty := loader.SourceFunc(func(context.Context, string) (factory.ModuleFactory, error) {
		return nil, nil
	})
	cache := loader.NewCache(empty, newCountingSource("core"))

	require.Equal(t, "core:A", cache.Acquire(testCtx(), "core").AttemptCreate("A", "IA"))
}

func TestCache_PanickingSourceIsNop(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	panicking := loader.SourceFunc(func(context.Context, string) (factory.ModuleFactory, error) {
		panic("init failed")
	})
	cache := loader.NewCache(panicking)

	// --- Act ---
	var first factory.ModuleFactory
	require.NotPanics(t, func() { first = cache.Acquire(testCtx(), "libbroken.so") })

	// --- Assert ---
	require.Equal(t, factory.Nop, first)
	require.Equal(t, factory.Nop, cache.Acquire(testCtx(), "libbroken.so"))
	require.Equal(t, 2, cache.Refs("libbroken.so"))
}

func TestCache_PanickingSourceFallsThrough(t *testing.T) {
	t.Parallel()

	panicking := loader.SourceFunc(func(context.Context, string) (factory.ModuleFactory, error) {
		panic("init failed")
	})
	cache := loader.NewCache(panicking, newCountingSource("core"))

	require.Equal(t, "core:A", cache.Acquire(testCtx(), "core").AttemptCreate("A", "IA"))
}

func TestCache_ConcurrentFirstAcquireLoadsOnce(t *testing.T) {
	t.Parallel()

	src := newCountingSource("core")
	src.delay = 10 * time.Millisecond
	cache := loader.NewCache(src)
	ctx := testCtx()

	const workers = 50
	results := make([]factory.ModuleFactory, workers)
	var started atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Add(1)
			results[i] = cache.Acquire(ctx, "core")
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(workers), started.Load())
	require.Equal(t, 1, src.count("core"))
	for _, f := range results {
		require.Same(t, results[0], f)
	}
	require.Equal(t, workers, cache.Refs("core"))
}

func TestCache_ReleaseUnloadsAtZero(t *testing.T) {
	t.Parallel()

	src := newCountingSource("core")
	cache := loader.NewCache(src)
	ctx := testCtx()

	a := cache.Acquire(ctx, "core")
	cache.Acquire(ctx, "core")

	cache.Release("core")
	require.Equal(t, 1, cache.Refs("core"))
	require.Equal(t, []string{"core"}, cache.Loaded())

	cache.Release("core")
	require.Equal(t, 0, cache.Refs("core"))
	require.Empty(t, cache.Loaded())

	// Releasing an unknown name is harmless.
	cache.Release("core")
	cache.Release("never-acquired")

	b := cache.Acquire(ctx, "core")
	require.NotSame(t, a, b, "a fully released module is loaded again")
	require.Equal(t, 2, src.count("core"))
}

func TestCache_Close(t *testing.T) {
	t.Parallel()

	cache := loader.NewCache(newCountingSource("core"))
	cache.Acquire(testCtx(), "core")
	cache.Close()

	require.Empty(t, cache.Loaded())
	require.Equal(t, 0, cache.Refs("core"))
}
