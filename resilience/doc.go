// Package resilience holds the circuit breaker and rate limiter that the
// HTTP transport can put in front of every call. Neither retries.
package resilience
