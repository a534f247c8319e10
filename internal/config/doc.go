// Package config loads and validates engine configuration from the
// environment and optional config files. Scoring weights and scheduling
// defaults live here rather than as literals in the engine, so policy can
// be tuned without touching algorithm code.
package config
