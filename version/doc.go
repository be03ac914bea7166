// Package version provides build version information for the SDK. The
// version is reported in the User-Agent header of every request.
//
// Version, git commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/openapi-go/version.Version=1.0.0"
package version
