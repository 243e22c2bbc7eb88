// Package api implements the HTTP REST API for the MacBook catalog service.
//
// This package provides:
//   - Read-only REST endpoints for listing, filtering, searching, and sorting
//     catalog devices
//   - Lookup of a single device by model ID
//   - Status-definition and notes metadata endpoints
//   - Middleware stack (request ID, logging, recovery, CORS, body size limit,
//     optional rate limiting)
//   - TLS support for production deployments
//
// # Architecture
//
// The API server sits between IT-management clients and the immutable catalog
// store. Every list endpoint runs the same fixed pipeline over the store:
// group selection → status filter → search → sort. The operators are pure
// functions in the catalog package, so handlers stay thin and stateless.
//
// # Response Envelopes
//
// Success responses are {"success": true, "count": n, "data": ..., "metadata": ...}
// with count and metadata present on list endpoints. Error responses are
// {"success": false, "error": code, "message": text}. The /health endpoint is
// the one unwrapped surface, for load-balancer probes.
//
// # Error Model
//
// Empty filter or search results are not errors: they are success responses
// with count 0. Only a missed model-ID lookup and unmatched routes produce
// 404s. Panics in handlers are recovered and surfaced as generic 500
// envelopes without crashing the process.
package api
