package store

import "sync"

// listeners is a registry of payload-free change callbacks. The
// callback carries no data: subscribers reload authoritative state
// wholesale, so overlapping notifications are redundant but harmless.
type listeners struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

// Subscribe registers a callback invoked after every successful
// mutation. The returned function unregisters it.
func (l *listeners) Subscribe(fn func()) (unsubscribe func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.subs == nil {
		l.subs = make(map[int]func())
	}
	id := l.nextID
	l.nextID++
	l.subs[id] = fn

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.subs, id)
	}
}

// notify invokes all registered callbacks. Callbacks run outside the
// lock so a subscriber may unsubscribe from within its own callback.
func (l *listeners) notify() {
	l.mu.Lock()
	fns := make([]func(), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
