package logfacade

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShutdownDrainsAsyncQueues checks that Shutdown returns promptly while
// producers are still logging, and that every record accepted before it is
// written out.
func TestShutdownDrainsAsyncQueues(t *testing.T) {
	ctx := NewContext()
	require.Equal(t, InitSucceeded, ctx.Init(InitConfig{
		AsyncMode:      true,
		QueueSize:      64,
		OverflowPolicy: OverflowBlock,
		FlushInterval:  10 * time.Millisecond,
	}))

	out := &captureWriter{}
	sink := ctx.CreateWriterSink(out, false, true)
	lg := ctx.CreateLogger([]SinkHandle{sink}, "async", &LoggerParams{Pattern: "%v", Level: LevelTrace, BitMask: allBits})
	require.NotZero(t, lg)

	const producers, perProducer = 8, 200
	var accepted sync.WaitGroup
	for p := 0; p < producers; p++ {
		accepted.Add(1)
		go func() {
			defer accepted.Done()
			for i := 0; i < perProducer; i++ {
				ctx.Log(lg, LevelInfo, "x")
			}
		}()
	}
	accepted.Wait()

	done := make(chan bool, 1)
	go func() { done <- ctx.Shutdown() }()

	select {
	case ok := <-done:
		assert.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown timed out with queued records")
	}

	assert.Len(t, out.Lines(), producers*perProducer)
	assert.False(t, ctx.IsValidLogger(lg))
	assert.False(t, ctx.Log(lg, LevelInfo, "after shutdown"))
}

// TestShutdownWhileLogging races Shutdown against producers. Calls after the
// teardown must fail cleanly instead of panicking or hanging.
func TestShutdownWhileLogging(t *testing.T) {
	ctx := NewContext()
	require.Equal(t, InitSucceeded, ctx.Init(InitConfig{AsyncMode: true, QueueSize: 16, OverflowPolicy: OverflowDiscard}))

	sink := ctx.CreateWriterSink(&captureWriter{}, false, true)
	lg := ctx.CreateLogger([]SinkHandle{sink}, "race", nil)
	require.NotZero(t, lg)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					ctx.Log(lg, LevelWarn, "spin")
				}
			}
		}()
	}

	time.Sleep(5 * time.Millisecond)
	done := make(chan struct{})
	go func() {
		ctx.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not return while producers were active")
	}
	close(stop)
	wg.Wait()
	assert.Equal(t, 0, ctx.LoggerCount())
}
