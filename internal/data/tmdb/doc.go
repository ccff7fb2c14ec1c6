// Package tmdb is the single integration point with The Movie Database API.
//
// Every request carries the configured api key and language. Upstream
// responses are decoded into typed summaries and details so downstream code
// never handles raw JSON. Failures are normalized: list endpoints report
// utils.ErrUpstream, movie lookups report utils.ErrNotFound. Nothing is cached
// and nothing is retried.
package tmdb
