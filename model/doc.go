// Package model holds the resource types shared by several endpoint
// packages: files and checksums, jobs and zones, merchandise and orders,
// and file sync tasks.
//
// Fields are named after the service's JSON keys. Fields absent from a
// response keep their zero values.
package model
