// Package util holds small helpers for optional request fields and for
// keeping secrets and stray quoting out of logs and configuration.
package util
