package logfacade

import (
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"go.uber.org/atomic"
)

// sinkRegistry adds target tracking to the generic registry: it remembers
// every still-referenced sink by its target key, so one physical target is
// never opened twice even after its handle was freed while a logger still
// writes to it.
type sinkRegistry struct {
	*registry[SinkHandle, *SinkWrapper]
	bridge *ErrorBridge

	targetsMu sync.Mutex
	targets   map[string]*sharedSink
}

func newSinkRegistry(serial *atomic.Uint64, bridge *ErrorBridge) *sinkRegistry {
	return &sinkRegistry{
		registry: newRegistry[SinkHandle, *SinkWrapper](serial),
		bridge:   bridge,
		targets:  make(map[string]*sharedSink),
	}
}

func (r *sinkRegistry) liveTarget(target string) *sharedSink {
	r.targetsMu.Lock()
	defer r.targetsMu.Unlock()
	return r.targets[target]
}

func (r *sinkRegistry) track(s *sharedSink) {
	if s.target == emptyString {
		return
	}
	s.onRelease = r.untrack
	r.targetsMu.Lock()
	r.targets[s.target] = s
	r.targetsMu.Unlock()
}

func (r *sinkRegistry) untrack(s *sharedSink) {
	r.targetsMu.Lock()
	defer r.targetsMu.Unlock()
	if r.targets[s.target] == s {
		delete(r.targets, s.target)
	}
}

func (r *sinkRegistry) wrap(s *sharedSink) *SinkWrapper {
	return &SinkWrapper{sink: s, bridge: r.bridge}
}

func (r *sinkRegistry) openNew(target string, open func() (Sink, error)) (*SinkWrapper, error) {
	s, err := open()
	if err != nil {
		return nil, err
	}
	shared := newSharedSink(s, target)
	shared.acquire()
	r.track(shared)
	return r.wrap(shared), nil
}

// createSink fails when target is already registered or still referenced by
// a logger.
func (r *sinkRegistry) createSink(target string, open func() (Sink, error)) (SinkHandle, error) {
	const op smerrors.Op = "logfacade.sinkRegistry.createSink"
	return r.create(target, func() (*SinkWrapper, error) {
		if target != emptyString && r.liveTarget(target) != nil {
			return nil, smerrors.New(op).Err(ErrExists).Msg(errMsgKeyExists + " (" + target + ")")
		}
		return r.openNew(target, open)
	})
}

// getOrCreateSink returns the handle registered for target. When only a
// logger still holds the target's sink, a new handle sharing it is issued.
func (r *sinkRegistry) getOrCreateSink(target string, open func() (Sink, error)) (SinkHandle, error) {
	h, _, err := r.getOrCreate(target, func() (*SinkWrapper, error) {
		if target != emptyString {
			if live := r.liveTarget(target); live != nil && live.acquire() {
				return r.wrap(live), nil
			}
		}
		return r.openNew(target, open)
	})
	return h, err
}

// acquireTarget returns a referenced sink for target without issuing a
// handle. Loggers that own their sink outright are built this way.
func (r *sinkRegistry) acquireTarget(target string, open func() (Sink, error)) (*sharedSink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if target != emptyString {
		if live := r.liveTarget(target); live != nil && live.acquire() {
			return live, nil
		}
	}
	w, err := r.openNew(target, open)
	if err != nil {
		return nil, err
	}
	return w.shared(), nil
}

// acquire resolves each handle and takes a reference on its sink. Handles
// that do not resolve are skipped.
func (r *sinkRegistry) acquire(handles []SinkHandle) []*sharedSink {
	out := make([]*sharedSink, 0, len(handles))
	for _, h := range handles {
		w, ok := r.find(h)
		if !ok {
			continue
		}
		if s := w.shared(); s.acquire() {
			out = append(out, s)
		}
	}
	return out
}

func (r *sinkRegistry) liveTargets() int {
	r.targetsMu.Lock()
	defer r.targetsMu.Unlock()
	return len(r.targets)
}
