// Package service orchestrates the scheduling engine for embedding
// callers: it runs scheduling passes, funnels every commit through the
// assignment store's conflict check, proxies reschedule proposals, and
// drives the spaced-repetition review cycle. The engine packages stay
// pure; logging and write serialization happen here.
package service
