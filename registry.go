package logfacade

import (
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"go.uber.org/atomic"
)

// entry is what a registry owns: a wrapper that knows its dedup key and how
// to release its shared reference.
type entry interface {
	key() string
	destroy()
}

// registry maps handles of one kind to their wrappers. Every structural
// operation holds mu for its whole duration. Readers on the logging path use
// resolve, which loads an immutable snapshot of the map and takes no lock; a
// wrapper obtained that way may be deleted concurrently and stays usable
// until the caller drops it.
type registry[H handleKind, W entry] struct {
	mu       sync.Mutex
	entries  map[H]W
	keys     map[string]H
	snapshot atomic.Pointer[map[H]W]
	serial   *atomic.Uint64
}

func newRegistry[H handleKind, W entry](serial *atomic.Uint64) *registry[H, W] {
	r := &registry[H, W]{
		entries: make(map[H]W),
		keys:    make(map[string]H),
		serial:  serial,
	}
	r.publish()
	return r
}

// publish stores a fresh copy of entries for lock-free readers. Callers hold mu.
func (r *registry[H, W]) publish() {
	snap := make(map[H]W, len(r.entries))
	for h, w := range r.entries {
		snap[h] = w
	}
	r.snapshot.Store(&snap)
}

// insert must be called with mu held.
func (r *registry[H, W]) insert(w W) H {
	h := makeHandle[H](r.serial.Inc())
	r.entries[h] = w
	if k := w.key(); k != emptyString {
		r.keys[k] = h
	}
	r.publish()
	return h
}

// create builds and inserts a wrapper. A non-empty key must not be taken.
func (r *registry[H, W]) create(key string, build func() (W, error)) (H, error) {
	const op smerrors.Op = "logfacade.registry.create"
	r.mu.Lock()
	defer r.mu.Unlock()

	if key != emptyString {
		if _, taken := r.keys[key]; taken {
			return 0, smerrors.New(op).Err(ErrExists).Msg(errMsgKeyExists + " (" + key + ")")
		}
	}
	w, err := build()
	if err != nil {
		return 0, smerrors.New(op).Err(err).Msg("construction failed")
	}
	return r.insert(w), nil
}

// getOrCreate returns the handle registered under key, building a new wrapper
// only when none exists. created reports whether build ran successfully.
func (r *registry[H, W]) getOrCreate(key string, build func() (W, error)) (h H, created bool, err error) {
	const op smerrors.Op = "logfacade.registry.getOrCreate"
	r.mu.Lock()
	defer r.mu.Unlock()

	if key != emptyString {
		if existing, ok := r.keys[key]; ok {
			return existing, false, nil
		}
	}
	w, err := build()
	if err != nil {
		return 0, false, smerrors.New(op).Err(err).Msg("construction failed")
	}
	return r.insert(w), true, nil
}

// find looks h up under the lock.
func (r *registry[H, W]) find(h H) (W, bool) {
	var zero W
	if !hasKind(h) {
		return zero, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.entries[h]
	return w, ok
}

// resolve looks h up in the published snapshot without locking.
func (r *registry[H, W]) resolve(h H) (W, bool) {
	var zero W
	if !hasKind(h) {
		return zero, false
	}
	snap := r.snapshot.Load()
	if snap == nil {
		return zero, false
	}
	w, ok := (*snap)[h]
	return w, ok
}

// lookup returns the handle registered under key.
func (r *registry[H, W]) lookup(key string) (H, bool) {
	if key == emptyString {
		return 0, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.keys[key]
	return h, ok
}

// validate is a diagnostic liveness check; it takes the lock.
func (r *registry[H, W]) validate(h H) bool {
	_, ok := r.find(h)
	return ok
}

// remove unregisters h and destroys its wrapper outside the lock.
func (r *registry[H, W]) remove(h H) bool {
	if !hasKind(h) {
		return false
	}
	r.mu.Lock()
	w, ok := r.entries[h]
	if ok {
		delete(r.entries, h)
		if k := w.key(); k != emptyString && r.keys[k] == h {
			delete(r.keys, k)
		}
		r.publish()
	}
	r.mu.Unlock()

	if ok {
		w.destroy()
	}
	return ok
}

// dropAll empties the registry and destroys every wrapper.
func (r *registry[H, W]) dropAll() int {
	r.mu.Lock()
	old := r.entries
	r.entries = make(map[H]W)
	r.keys = make(map[string]H)
	r.publish()
	r.mu.Unlock()

	for _, w := range old {
		w.destroy()
	}
	return len(old)
}

// each calls fn for every wrapper in the current snapshot.
func (r *registry[H, W]) each(fn func(H, W)) {
	snap := r.snapshot.Load()
	if snap == nil {
		return
	}
	for h, w := range *snap {
		fn(h, w)
	}
}

// len returns the number of live entries.
func (r *registry[H, W]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
