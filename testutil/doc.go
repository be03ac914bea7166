// Package testutil extends the component lifecycle with test-only hooks.
//
// A TestComponent can be started and stopped like any component and can
// also be reset between cases or snapshotted and restored. The fake server
// in openapitest is one:
//
//	srv := openapitest.NewServer()
//	testutil.T(t).Setup(srv)
//
// Manager drives several test components together.
package testutil
