package logfacade

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

// countingSink records writes and how often it was closed.
type countingSink struct {
	out    captureWriter
	closed atomic.Int32
}

func (s *countingSink) Write(p []byte) (int, error) { return s.out.Write(p) }
func (s *countingSink) WriteLevel(_ zerolog.Level, p []byte) (int, error) {
	return s.out.Write(p)
}
func (s *countingSink) Flush() error { return nil }
func (s *countingSink) Close() error {
	s.closed.Inc()
	return nil
}

func newTestSinkRegistry() *sinkRegistry {
	return newSinkRegistry(atomic.NewUint64(0), &ErrorBridge{})
}

func TestSinkRegistry_CreateRejectsLiveTarget(t *testing.T) {
	r := newTestSinkRegistry()
	open := func() (Sink, error) { return &countingSink{}, nil }

	h, err := r.createSink("file:/tmp/a.log", open)
	require.NoError(t, err)
	require.NotZero(t, h)

	_, err = r.createSink("file:/tmp/a.log", open)
	assert.True(t, isCause(err, ErrExists))

	other, err := r.createSink("file:/tmp/b.log", open)
	require.NoError(t, err)
	assert.NotEqual(t, h, other)
}

func TestSinkRegistry_GetOrCreateConstructsOnce(t *testing.T) {
	r := newTestSinkRegistry()
	opens := 0
	open := func() (Sink, error) {
		opens++
		return &countingSink{}, nil
	}

	first, err := r.getOrCreateSink("rotating", open)
	require.NoError(t, err)
	second, err := r.getOrCreateSink("rotating", open)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, opens)
	assert.Equal(t, 1, r.len())
}

func TestSinkRegistry_TargetOutlivesHandle(t *testing.T) {
	r := newTestSinkRegistry()
	sink := &countingSink{}
	opens := 0
	open := func() (Sink, error) {
		opens++
		return sink, nil
	}

	h, err := r.createSink("console:stdout", open)
	require.NoError(t, err)

	held := r.acquire([]SinkHandle{h})
	require.Len(t, held, 1)

	require.True(t, r.remove(h))
	assert.Equal(t, int32(0), sink.closed.Load(), "a logger still holds the sink")
	assert.Equal(t, 1, r.liveTargets())

	_, err = r.createSink("console:stdout", open)
	assert.True(t, isCause(err, ErrExists), "the physical target is still open")

	again, err := r.getOrCreateSink("console:stdout", open)
	require.NoError(t, err)
	assert.NotEqual(t, h, again)
	assert.Equal(t, 1, opens, "the live sink is shared, not reopened")

	require.NoError(t, held[0].release())
	assert.Equal(t, int32(0), sink.closed.Load())
	require.True(t, r.remove(again))
	assert.Equal(t, int32(1), sink.closed.Load())
	assert.Equal(t, 0, r.liveTargets())
}

func TestSinkRegistry_AcquireSkipsDeadHandles(t *testing.T) {
	r := newTestSinkRegistry()
	h, err := r.createSink(emptyString, func() (Sink, error) { return &countingSink{}, nil })
	require.NoError(t, err)

	held := r.acquire([]SinkHandle{0, h, SinkHandle(12345), h})
	assert.Len(t, held, 2)
	for _, s := range held {
		require.NoError(t, s.release())
	}
}

func TestSharedSink_NoReviveAfterClose(t *testing.T) {
	s := newSharedSink(&countingSink{}, emptyString)
	require.True(t, s.acquire())
	require.NoError(t, s.release())
	assert.False(t, s.acquire())
}

func TestCanonicalPath_DedupsEquivalentNames(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(dir, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	want := fileTarget(filepath.Join(dir, "app.log"))
	assert.Equal(t, want, fileTarget(filepath.Join(link, "app.log")))
	assert.Equal(t, want, fileTarget(filepath.Join(dir, "sub", "..", "app.log")))
}

func TestSinkRegistry_ConcurrentAcquireRelease(t *testing.T) {
	r := newTestSinkRegistry()
	var (
		mu     sync.Mutex
		opened []*countingSink
	)
	open := func() (Sink, error) {
		s := &countingSink{}
		mu.Lock()
		opened = append(opened, s)
		mu.Unlock()
		return s, nil
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s, err := r.acquireTarget("file:/tmp/shared.log", open)
				if !assert.NoError(t, err) {
					return
				}
				assert.NoError(t, s.release())
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, r.liveTargets())
	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, opened)
	for _, s := range opened {
		assert.Equal(t, int32(1), s.closed.Load())
	}
}
