// Package security provides TLS configuration for the HTTP transport.
//
//	cfg := security.TLSConfig{
//	    CAFile:   "/etc/openapi/ca.pem",
//	    CertFile: "/etc/openapi/client.pem",
//	    KeyFile:  "/etc/openapi/client-key.pem",
//	}
//
//	tlsConfig, err := cfg.Build()
package security
