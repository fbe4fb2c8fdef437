// Package state provides the reactive primitives the demo widgets are built from.
//
// Core abstractions:
//   - Cell: a value with subscribers, notified after every transition
//   - Scheduler: batches notifications so one interaction yields one render
//   - Ref: a mutable slot that never notifies
//   - Handle: a lifecycle-bound reference to an imperatively driven widget
//   - Context/Scope/Provider: values shared with a subtree, nearest provider wins
//   - Ticker: a Stopped/Running periodic counter with race-free cancellation
//   - Lifecycle: cleanups released exactly once at teardown
//
// Nothing here is safe for concurrent use except Loop.Post. Timer callbacks and
// other background work reach the state through a Loop.
package state
