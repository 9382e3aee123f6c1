package logfacade

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

type fakeEntry struct {
	name      string
	destroyed atomic.Int32
}

func (e *fakeEntry) key() string { return e.name }
func (e *fakeEntry) destroy()    { e.destroyed.Inc() }

func newFakeRegistry() *registry[LoggerHandle, *fakeEntry] {
	return newRegistry[LoggerHandle, *fakeEntry](atomic.NewUint64(0))
}

func TestRegistry_RoundTrip(t *testing.T) {
	r := newFakeRegistry()
	e := &fakeEntry{}
	h, err := r.create(emptyString, func() (*fakeEntry, error) { return e, nil })
	require.NoError(t, err)
	require.NotZero(t, h)

	got, ok := r.find(h)
	assert.True(t, ok)
	assert.Same(t, e, got)
	assert.True(t, r.validate(h))
	got, ok = r.resolve(h)
	assert.True(t, ok)
	assert.Same(t, e, got)

	assert.True(t, r.remove(h))
	assert.False(t, r.remove(h))
	assert.False(t, r.validate(h))
	_, ok = r.resolve(h)
	assert.False(t, ok)
	assert.Equal(t, int32(1), e.destroyed.Load())
}

func TestRegistry_ConstructionFailure(t *testing.T) {
	r := newFakeRegistry()
	boom := errors.New("boom")
	h, err := r.create("x", func() (*fakeEntry, error) { return nil, boom })
	assert.Zero(t, h)
	assert.True(t, isCause(err, boom))
	assert.Equal(t, 0, r.len())
	_, ok := r.lookup("x")
	assert.False(t, ok)
}

func TestRegistry_KeyedCreate(t *testing.T) {
	r := newFakeRegistry()
	h, err := r.create("app", func() (*fakeEntry, error) { return &fakeEntry{name: "app"}, nil })
	require.NoError(t, err)

	_, err = r.create("app", func() (*fakeEntry, error) {
		t.Fatal("build must not run for a taken key")
		return nil, nil
	})
	assert.True(t, isCause(err, ErrExists))

	found, ok := r.lookup("app")
	assert.True(t, ok)
	assert.Equal(t, h, found)

	require.True(t, r.remove(h))
	_, ok = r.lookup("app")
	assert.False(t, ok)
}

func TestRegistry_GetOrCreateBuildsOnce(t *testing.T) {
	r := newFakeRegistry()
	var builds atomic.Int32
	build := func() (*fakeEntry, error) {
		builds.Inc()
		return &fakeEntry{name: "shared"}, nil
	}

	const workers = 16
	handles := make([]LoggerHandle, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, _, err := r.getOrCreate("shared", build)
			assert.NoError(t, err)
			handles[i] = h
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
	for _, h := range handles {
		assert.Equal(t, handles[0], h)
	}
}

func TestRegistry_DropAll(t *testing.T) {
	r := newFakeRegistry()
	entries := []*fakeEntry{{}, {name: "b"}, {}}
	var handles []LoggerHandle
	for _, e := range entries {
		e := e
		h, err := r.create(e.name, func() (*fakeEntry, error) { return e, nil })
		require.NoError(t, err)
		handles = append(handles, h)
	}

	assert.Equal(t, 3, r.dropAll())
	assert.Equal(t, 0, r.len())
	for i, h := range handles {
		assert.False(t, r.validate(h))
		assert.Equal(t, int32(1), entries[i].destroyed.Load())
	}

	h, err := r.create(emptyString, func() (*fakeEntry, error) { return &fakeEntry{}, nil })
	require.NoError(t, err)
	assert.NotContains(t, handles, h, "handles are never reused")
}

func TestHandles_KindTagged(t *testing.T) {
	serial := atomic.NewUint64(0)
	sinks := newRegistry[SinkHandle, *fakeEntry](serial)
	loggers := newRegistry[LoggerHandle, *fakeEntry](serial)

	sh, err := sinks.create(emptyString, func() (*fakeEntry, error) { return &fakeEntry{}, nil })
	require.NoError(t, err)
	lh, err := loggers.create(emptyString, func() (*fakeEntry, error) { return &fakeEntry{}, nil })
	require.NoError(t, err)

	assert.False(t, loggers.validate(LoggerHandle(sh)))
	assert.False(t, sinks.validate(SinkHandle(lh)))
	assert.False(t, loggers.remove(LoggerHandle(sh)))
	assert.True(t, sinks.validate(sh))

	assert.False(t, hasKind(LoggerHandle(0)))
	assert.False(t, hasKind(makeHandle[SinkHandle](0)))
	assert.Equal(t, "sink#1", sh.String())
	assert.Equal(t, "logger#2", lh.String())
}
