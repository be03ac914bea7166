// Package errors defines the error taxonomy shared by the OpenAPI client.
//
// Every failure surfaced by the client is an *AppError carrying a
// machine-readable ErrorCode. Configuration and signing problems are
// reported before any I/O; transport, status and decode failures are kept
// distinct so callers can tell "the server said no" from "the server said
// yes but the payload was unreadable".
package errors
