// Package eventbus provides a synchronous, in-process publish/subscribe
// dispatcher with runtime signature matching. Callbacks of arbitrary,
// statically-typed signatures subscribe under string event names; publishing
// delivers a set of arguments to every subscription whose parameter signature
// the arguments can satisfy, exactly or through a small, fixed conversion
// table.
//
// # Core Components
//
// Bus owns the subscription registry and the dispatch loop. Construction is
// explicit; there is no package-level singleton. A Bus is safe for concurrent
// use: publishes and read-only queries run concurrently, mutations are
// serialized by a reader/writer lock.
//
// Subscriptions are identified by monotonically increasing IDs issued
// atomically, so IDs stay unique even when Subscribe calls race.
//
// Matching is structural. Each subscription reifies its callback's parameter
// types once at subscribe time; each publish packages its arguments into a
// per-call bundle and compares, position by position. An arity or type
// mismatch is a normal outcome: the subscription is skipped and the remaining
// ones are still tried, which lets entirely different signatures coexist on
// one event name without coordination.
//
// Stats computes aggregate registry counts in one scan on demand, and
// Collector exposes the same snapshot as Prometheus gauges.
//
// # Basic Usage
//
//	import (
//		"fmt"
//
//		"github.com/solyard/eventbus"
//	)
//
//	func main() {
//		bus := eventbus.New()
//
//		id, _ := bus.Subscribe("order.total", func(subtotal, tax int) {
//			fmt.Println("total:", subtotal+tax)
//		})
//
//		bus.Publish("order.total", 100, 8) // prints "total: 108"
//
//		bus.Unsubscribe("order.total", id)
//	}
//
// # Delivery Semantics
//
// Delivery is synchronous on the publisher's goroutine, in subscription
// insertion order, over the subscription set captured when the publish
// acquired the registry's read lock. Callbacks run outside the lock, so they
// may subscribe or unsubscribe on the same Bus; such mutations take effect
// immediately in the registry but do not alter the delivery already in
// flight. A callback that panics, or returns a non-nil trailing error, is
// logged with its subscription ID and does not stop delivery to the
// remaining subscriptions. Publish never fails because of subscriber
// behavior.
//
// # Diagnostics
//
// All diagnostic output goes through log/slog and is discarded by default.
// WithLogger supplies a logger; WithVerboseLogging or SetVerboseLogging
// enables trace lines for subscribes, publishes and signature mismatches.
// Trace text is informational and not a compatibility contract.
package eventbus
