package logfacade

import (
	"sync"
	"time"

	smerrors "github.com/Station-Manager/errors"
	"go.uber.org/atomic"
)

// InitResult is returned by Context.Init.
type InitResult uint32

const (
	InitFailed InitResult = iota
	InitSucceeded
	InitWasInitialized
)

func (r InitResult) String() string {
	switch r {
	case InitSucceeded:
		return "succeeded"
	case InitWasInitialized:
		return "was-initialized"
	default:
		return "failed"
	}
}

// InitConfig is applied by the first Init call only.
type InitConfig struct {
	// AsyncMode gives every logger created afterwards its own bounded queue
	// and drain goroutine.
	AsyncMode      bool
	QueueSize      int            `validate:"gte=0,lte=16777216"`
	OverflowPolicy OverflowPolicy `validate:"lte=1"`
	FlushInterval  time.Duration  `validate:"gte=0"`
	OnError        ErrorHandler
}

func (c InitConfig) withDefaults() InitConfig {
	if c.AsyncMode && c.QueueSize == 0 {
		c.QueueSize = defaultQueueSize
	}
	return c
}

// sameSettings compares everything but the callback.
func (c InitConfig) sameSettings(o InitConfig) bool {
	return c.AsyncMode == o.AsyncMode &&
		c.QueueSize == o.QueueSize &&
		c.OverflowPolicy == o.OverflowPolicy &&
		c.FlushInterval == o.FlushInterval
}

// Context is one lifecycle-scoped instance of the facade: the init counter,
// the error bridge and both handle registries. All of its methods are safe
// for concurrent use.
type Context struct {
	mu   sync.Mutex
	refs int
	cfg  InitConfig

	bridge  *ErrorBridge
	sinks   *sinkRegistry
	loggers *registry[LoggerHandle, *LoggerWrapper]
}

// NewContext returns an uninitialized Context. Sinks and loggers may be
// created before Init; they use synchronous output.
func NewContext() *Context {
	serial := atomic.NewUint64(0)
	bridge := &ErrorBridge{}
	return &Context{
		bridge:  bridge,
		sinks:   newSinkRegistry(serial, bridge),
		loggers: newRegistry[LoggerHandle, *LoggerWrapper](serial),
	}
}

// Init increments the reference count. The first call validates and applies
// cfg; later calls apply nothing and report a diagnostic when their settings
// differ from the ones in effect.
func (c *Context) Init(cfg InitConfig) InitResult {
	const op smerrors.Op = "logfacade.Context.Init"
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.refs > 0 {
		c.refs++
		if !c.cfg.sameSettings(cfg.withDefaults()) {
			c.bridge.ReportError(smerrors.New(op).Msg(errMsgConfigMismatch))
		}
		return InitWasInitialized
	}

	if err := validateStruct(&cfg); err != nil {
		if cfg.OnError != nil {
			e := smerrors.New(op).Err(ErrInvalidConfig).Msg(errMsgConfigInvalid + " " + err.Error())
			cfg.OnError(flattenError(e))
		}
		return InitFailed
	}

	c.cfg = cfg.withDefaults()
	c.bridge.Set(cfg.OnError)
	c.refs = 1
	return InitSucceeded
}

// Shutdown decrements the reference count. When it reaches zero every logger
// and sink is destroyed, the configuration is reset and the error callback is
// cleared. It reports whether teardown ran.
func (c *Context) Shutdown() bool {
	const op smerrors.Op = "logfacade.Context.Shutdown"
	return c.guard(op, c.shutdown)
}

func (c *Context) shutdown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.refs == 0 {
		return false
	}
	c.refs--
	if c.refs > 0 {
		return false
	}
	c.cfg = InitConfig{}

	// Loggers first so their sink references are released before the sink
	// handles drop the last ones.
	c.loggers.dropAll()
	c.sinks.dropAll()
	c.bridge.Clear()
	return true
}

// Initialized reports whether at least one Init is outstanding.
func (c *Context) Initialized() bool {
	return c.RefCount() > 0
}

// RefCount returns the number of outstanding Init calls.
func (c *Context) RefCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refs
}

// ErrorBridge returns the bridge errors are reported through.
func (c *Context) ErrorBridge() *ErrorBridge {
	return c.bridge
}

func (c *Context) config() InitConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}
