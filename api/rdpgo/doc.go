// Package rdpgo drives the remote desktop agent on HPC nodes through the
// HPC endpoint.
package rdpgo
