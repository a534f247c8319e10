// Package scheduler assigns ordered work items into free time slots over a
// bounded day horizon, and checks aggregate capacity against a deadline.
// All operations are pure functions over caller-owned data: nothing is
// retained between calls and identical inputs always yield identical
// outputs.
package scheduler
