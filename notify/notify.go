package notify

import "sync"

// Listener receives a no-argument update signal.
type Listener interface {
	OnUpdate()
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func()

// OnUpdate calls f.
func (f ListenerFunc) OnUpdate() { f() }

// Subscription identifies a registered listener for Unsubscribe.
// The zero value never matches a live subscription.
type Subscription uint64

type entry struct {
	id Subscription
	l  Listener
}

// Notifier keeps an ordered list of listeners.
//
// Subscribe and Unsubscribe may be called from any goroutine. Notify takes a
// snapshot under a read lock and invokes listeners outside it, so a listener
// may unsubscribe itself without deadlocking.
// The zero value is ready to use.
type Notifier struct {
	mu      sync.RWMutex
	nextID  Subscription
	entries []entry
}

// Subscribe registers l and returns its handle. A nil listener is ignored and
// yields the zero Subscription.
func (n *Notifier) Subscribe(l Listener) Subscription {
	if l == nil {
		return 0
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	n.entries = append(n.entries, entry{id: n.nextID, l: l})

	return n.nextID
}

// SubscribeFunc is shorthand for Subscribe(ListenerFunc(f)).
func (n *Notifier) SubscribeFunc(f func()) Subscription {
	if f == nil {
		return 0
	}

	return n.Subscribe(ListenerFunc(f))
}

// Unsubscribe removes the listener registered under s.
// Reports whether a listener was removed.
func (n *Notifier) Unsubscribe(s Subscription) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, e := range n.entries {
		if e.id == s {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return true
		}
	}

	return false
}

// Len returns the number of registered listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.entries)
}

// Notify invokes every listener synchronously in subscription order.
func (n *Notifier) Notify() {
	n.mu.RLock()
	if len(n.entries) == 0 {
		n.mu.RUnlock()
		return
	}
	snapshot := make([]Listener, len(n.entries))
	for i, e := range n.entries {
		snapshot[i] = e.l
	}
	n.mu.RUnlock()

	for _, l := range snapshot {
		l.OnUpdate()
	}
}
