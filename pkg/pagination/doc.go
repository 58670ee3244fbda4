// Package pagination implements the sequential page-collection loop
// shared by the user search and the per-user repository listing.
//
// Pages are requested strictly one at a time with a fixed pause between
// them; the pause is the only rate-limit accommodation and is never
// derived from quota headers. Every collection ends with an explicit
// StopReason so callers (and tests) can tell cap exhaustion, an empty
// page, a missing next link, and a fetch failure apart without
// inspecting control flow.
//
// A fetch failure is not propagated as an error: the collector returns
// whatever it accumulated from earlier pages together with
// StopFetchError. Partial results are always kept.
package pagination
