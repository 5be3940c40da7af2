package eventbus

// Stats is a point-in-time aggregate view of the registry. It is computed by
// one full scan at query time, not maintained incrementally, so it is
// internally consistent but may be stale the instant after it is read.
type Stats struct {
	TotalEvents          int    // distinct event names with at least one subscription
	TotalCallbacks       int    // subscriptions summed across all events
	MaxCallbacksPerEvent int    // largest subscription count held by a single event
	MostSubscribedEvent  string // event holding the maximum; ties break to the lexicographically smallest name
}

// Stats scans the registry under the read lock and returns an aggregate
// snapshot. When several events share the maximum subscription count,
// MostSubscribedEvent is the lexicographically smallest of their names.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var st Stats
	for name, subs := range b.subscriptions {
		n := len(subs)
		if n == 0 {
			continue
		}
		st.TotalEvents++
		st.TotalCallbacks += n

		switch {
		case n > st.MaxCallbacksPerEvent:
			st.MaxCallbacksPerEvent = n
			st.MostSubscribedEvent = name
		case n == st.MaxCallbacksPerEvent && name < st.MostSubscribedEvent:
			st.MostSubscribedEvent = name
		}
	}
	return st
}
