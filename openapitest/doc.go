// Package openapitest provides an in-process fake of the OpenAPI service
// for tests.
//
// A Server checks every request's signature with the same rules the
// client uses to produce it, records what it received and answers with
// the standard response envelope:
//
//	srv := openapitest.Start(t)
//	srv.Respond(http.MethodGet, "/api/jobs/:id", model.JobInfo{ID: "j1"})
//	client := srv.Client(t)
//
// Server implements testutil.TestComponent, so it can also be managed by a
// testutil.Manager or a component.Registry.
package openapitest
