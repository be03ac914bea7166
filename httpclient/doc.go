// Package httpclient carries a request descriptor onto the wire.
//
// A Request is the transport-agnostic description produced by an endpoint:
// method, URI, headers, query parameters and an optional body. Build turns
// it into an *http.Request against a base URL, and Transport executes it
// with TLS, HTTP/2 health checks and optional rate limiting and circuit
// breaking. Transport never retries.
//
// # Basic Usage
//
//	t, err := httpclient.New(httpclient.Config{Timeout: 10 * time.Second})
//
//	req := httpclient.NewRequest(http.MethodGet, "/api/storage/stat").
//	    SetQuery("Path", "/home/u/a.txt")
//	httpReq, err := httpclient.Build(ctx, "https://cloud.example.com", req)
//	resp, err := t.Do(httpReq)
//
// # Streaming
//
// Large downloads are exposed without buffering:
//
//	resp, err := t.DoStream(httpReq)
//	stream, err := httpclient.NewStreamResponse(resp)
//	defer stream.Close()
//	io.Copy(dst, stream.Body)
package httpclient
