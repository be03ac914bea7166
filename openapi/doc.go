// Package openapi is the client for the signed OpenAPI service.
//
// A Client holds the application credentials and one HTTP transport. Every
// call goes through Send, which builds the endpoint's request, adds the
// default headers and query parameters, signs the query with the app
// secret, executes it against the base URL of the active endpoint type and
// decodes the response:
//
//	cfg, err := openapi.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	client, err := openapi.New(cfg, openapi.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	resp, err := job.NewService(client).JobGet(ctx, &job.JobGetRequest{JobID: "4TiSxuPtJEm"})
//
// The packages under api wrap Send with typed methods. Custom endpoints
// call it directly, naming the result type:
//
//	resp, err := openapi.Send[*openapi.Response[Usage]](ctx, client, &usageRequest{})
//
// Services are grouped behind four base URLs (API, Cloud, HPC and Sync).
// WithEndpointType returns a copy of the client bound to another one.
//
// Responses with a non-2xx status fail with a REQUEST_FAILED error before
// any decoding. Service-level errors reported inside a 2xx envelope are
// returned as data; call Response.Err to turn them into an error.
package openapi
