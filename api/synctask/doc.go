// Package synctask controls the transfer of job result files through the
// sync endpoint.
package synctask
