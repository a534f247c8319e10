// Package store owns committed schedule state. The engine itself proposes
// assignments but never commits them; every write funnels through a store
// whose Commit re-checks the claimed slot under a lock, so two concurrent
// reschedules can never both claim the same minutes. Durable persistence
// across restarts remains the embedding application's responsibility.
package store
