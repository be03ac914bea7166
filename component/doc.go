// Package component defines lifecycle interfaces for long-lived pieces of an
// application, such as an API client with pooled connections or a fake
// server in tests.
//
// A Registry starts components in registration order and stops them in
// reverse, so a service that owns several clients can manage them together.
package component
