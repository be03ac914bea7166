// Package merch manages merchandise, orders and per-account special
// prices through the internal routes of the API endpoint.
//
// Order creation and post-paid updates are idempotent on IdempotentID.
// Leave it empty and the request fills in a fresh one, or set it with
// NewIdempotentID to retry safely.
package merch
