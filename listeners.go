package warnings

import "sync"

// Listener receives every warning that passes the policy checks.
type Listener func(*Warning)

// Notifier delivers a warning to every registered listener, synchronously and
// in registration order, before returning.
type Notifier interface {
	Notify(w *Warning)
}

// Listeners is the default Notifier. A panicking listener is not recovered
// here; it unwinds into the Emit caller and the remaining listeners are skipped.
type Listeners struct {
	mu     sync.RWMutex
	nextID uint64
	items  []listenerEntry
}

type listenerEntry struct {
	id uint64
	fn Listener
}

// Add registers fn and returns a func that unregisters it.
func (l *Listeners) Add(fn Listener) (remove func()) {
	if fn == nil {
		return func() {}
	}
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.items = append(l.items, listenerEntry{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			for i, e := range l.items {
				if e.id == id {
					l.items = append(l.items[:i:i], l.items[i+1:]...)
					return
				}
			}
		})
	}
}

func (l *Listeners) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Notify calls a snapshot of the listeners, so a listener may add or remove
// listeners without deadlocking.
func (l *Listeners) Notify(w *Warning) {
	l.mu.RLock()
	snapshot := make([]listenerEntry, len(l.items))
	copy(snapshot, l.items)
	l.mu.RUnlock()

	for _, e := range snapshot {
		e.fn(w)
	}
}
