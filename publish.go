package eventbus

import "log/slog"

// Publish delivers args to every current subscription of the event whose
// parameter signature matches, in insertion order, synchronously on the
// caller's goroutine. Arguments are packaged by value into one bundle shared
// read-only across all invocations of this call.
//
// Publishing to an unknown event is a no-op. A subscription whose signature
// cannot be satisfied is skipped silently; a callback that panics or returns
// a non-nil trailing error is logged with its subscription ID and does not
// stop delivery to the remaining subscriptions. Publish never fails because
// of subscriber behavior.
//
// The subscription set is captured under the registry's read lock and the
// lock is released before any callback runs, so callbacks may subscribe or
// unsubscribe on the same Bus; such mutations do not alter the delivery in
// flight.
func (b *Bus) Publish(event string, args ...any) {
	b.mu.RLock()
	subs := b.subscriptions[event]
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	b.mu.RUnlock()

	if len(snapshot) == 0 {
		if b.verbose.Load() {
			b.logger.Warn("publish to event with no subscriptions",
				slog.String("event", event))
		}
		return
	}

	bn := newBundle(args)
	verbose := b.verbose.Load()
	if verbose {
		b.logger.Debug("publish",
			slog.String("event", event),
			slog.String("dispatch_id", bn.dispatchID),
			slog.Int("args", len(args)),
			slog.String("types", bn.typeNames()))
	}

	matched := 0
	for _, sub := range snapshot {
		if b.dispatch(event, bn, sub, verbose) {
			matched++
		}
	}

	if verbose {
		b.logger.Debug("dispatch complete",
			slog.String("event", event),
			slog.String("dispatch_id", bn.dispatchID),
			slog.Int("matched", matched),
			slog.Int("subscriptions", len(snapshot)))
	}
}

// dispatch matches and invokes a single subscription, containing panics and
// callback errors so the remaining subscriptions of the same publish still
// run. It reports whether the callback was invoked.
func (b *Bus) dispatch(event string, bn *bundle, sub *subscription, verbose bool) (invoked bool) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("callback panicked",
				slog.String("event", event),
				slog.String("dispatch_id", bn.dispatchID),
				slog.Uint64("subscription_id", uint64(sub.id)),
				slog.Any("panic", r))
		}
	}()

	invoked, err := sub.tryInvoke(bn)
	if err != nil {
		b.logger.Error("callback failed",
			slog.String("event", event),
			slog.String("dispatch_id", bn.dispatchID),
			slog.Uint64("subscription_id", uint64(sub.id)),
			slog.String("error", err.Error()))
	}
	if !invoked && verbose {
		b.logger.Debug("signature mismatch, skipping callback",
			slog.String("event", event),
			slog.String("dispatch_id", bn.dispatchID),
			slog.Uint64("subscription_id", uint64(sub.id)),
			slog.String("expected", typeNames(sub.params)),
			slog.String("actual", bn.typeNames()))
	}
	return invoked
}

// PublishIfMinSubscribers publishes only when the event currently has at
// least min subscriptions, reporting whether it published. An unknown event
// never publishes, regardless of min.
//
// The count check and the publish are two separate read-lock sections: a
// concurrent unsubscription between them can reduce the set the publish
// actually delivers to. Callers that need an exact floor must coordinate
// subscription changes themselves.
func (b *Bus) PublishIfMinSubscribers(event string, min int, args ...any) bool {
	b.mu.RLock()
	subs, ok := b.subscriptions[event]
	count := len(subs)
	b.mu.RUnlock()

	if !ok || count < min {
		return false
	}

	b.Publish(event, args...)
	return true
}
