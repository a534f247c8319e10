// Package domain defines the core scheduling entities and their validation
// rules. All types are plain value objects owned by the caller; the engine
// packages built on top of them never retain references between calls.
package domain
