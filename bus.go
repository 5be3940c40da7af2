package eventbus

import (
	"io"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

// ID identifies a single subscription within a Bus. IDs are unique for the
// lifetime of the Bus, strictly increasing in issuance order, and never
// reused.
type ID uint64

// Bus is a synchronous, in-process publish/subscribe dispatcher. Callbacks of
// arbitrary signatures subscribe under string event names; Publish delivers a
// set of arguments to every subscription of that name whose parameter
// signature matches, either exactly or through the conversion rules described
// on Publish.
//
// A Bus is safe for concurrent use. Reads (Publish, IsRegistered,
// CallbackCount, EventNames, Stats) run concurrently with each other;
// mutations (Subscribe, Unsubscribe, UnsubscribeAll, Clear) are serialized.
// Callbacks are invoked outside the registry lock, so a callback may itself
// subscribe or unsubscribe without deadlocking; such mutations do not affect
// the delivery already in flight, which runs over the subscription set
// captured when the publish began.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[string][]*subscription
	nextID        atomic.Uint64

	logger  *slog.Logger
	verbose atomic.Bool
}

// New creates a Bus with the given options. Without options the Bus discards
// all diagnostic output and verbose tracing is off.
//
// Example:
//
//	bus := eventbus.New(
//	    eventbus.WithLogger(logger),
//	    eventbus.WithVerboseLogging(true),
//	)
func New(opts ...Option) *Bus {
	b := &Bus{
		subscriptions: make(map[string][]*subscription),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Subscribe registers callback under the given event name and returns its
// subscription ID. The callback may be any non-variadic function; its
// parameter types are captured once here and matched structurally against
// published arguments. Return values are ignored, except a trailing error,
// which is logged when non-nil.
//
// Multiple callbacks with entirely different signatures may share one event
// name; each publish silently skips the ones it cannot satisfy.
func (b *Bus) Subscribe(event string, callback any) (ID, error) {
	if callback == nil {
		return 0, ErrNilCallback
	}

	fn := reflect.ValueOf(callback)
	if fn.Kind() != reflect.Func {
		return 0, ErrNotAFunction
	}
	if fn.Type().IsVariadic() {
		return 0, ErrVariadicCallback
	}

	sub := newSubscription(ID(b.nextID.Add(1)), fn)

	b.mu.Lock()
	b.subscriptions[event] = append(b.subscriptions[event], sub)
	b.mu.Unlock()

	if b.verbose.Load() {
		b.logger.Debug("subscribed",
			slog.String("event", event),
			slog.Uint64("subscription_id", uint64(sub.id)),
			slog.String("signature", typeNames(sub.params)))
	}

	return sub.id, nil
}

// Unsubscribe removes the subscription identified by (event, id). It reports
// whether a subscription was removed; an unknown event or id is not an error.
// The relative order of the remaining subscriptions is preserved, and an
// event whose last subscription is removed disappears from the registry
// entirely.
func (b *Bus) Unsubscribe(event string, id ID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, ok := b.subscriptions[event]
	if !ok {
		return false
	}

	for i, sub := range subs {
		if sub.id != id {
			continue
		}
		copy(subs[i:], subs[i+1:])
		subs[len(subs)-1] = nil
		if len(subs) == 1 {
			delete(b.subscriptions, event)
		} else {
			b.subscriptions[event] = subs[:len(subs)-1]
		}
		return true
	}
	return false
}

// UnsubscribeAll removes every subscription for the given event name and
// returns how many were removed. It returns 0 for an unknown event.
func (b *Bus) UnsubscribeAll(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	count := len(b.subscriptions[event])
	delete(b.subscriptions, event)
	return count
}

// Clear removes every event and every subscription.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscriptions = make(map[string][]*subscription)
}

// IsRegistered reports whether the event currently has at least one
// subscription.
func (b *Bus) IsRegistered(event string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscriptions[event]) > 0
}

// CallbackCount returns the number of current subscriptions for the event,
// 0 for an unknown event.
func (b *Bus) CallbackCount(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscriptions[event])
}

// EventNames returns every event name with at least one subscription, sorted
// lexicographically.
func (b *Bus) EventNames() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.subscriptions))
	for name := range b.subscriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetVerboseLogging toggles diagnostic tracing of subscribe, publish and
// mismatch events at runtime. The trace text is informational only and not a
// compatibility contract.
func (b *Bus) SetVerboseLogging(enabled bool) {
	b.verbose.Store(enabled)
}
