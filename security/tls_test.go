package security

import (
	"crypto/tls"
	"strings"
	"testing"

	"github.com/kbukum/openapi-go/security/tlstest"
)

func TestTLSConfig_BuildDefaults(t *testing.T) {
	var nilCfg *TLSConfig
	for name, cfg := range map[string]*TLSConfig{"nil": nilCfg, "zero": {}} {
		got, err := cfg.Build()
		if err != nil || got != nil {
			t.Errorf("%s: expected nil, nil; got %v, %v", name, got, err)
		}
	}

	got, err := (&TLSConfig{ServerName: "openapi.internal"}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MinVersion != tls.VersionTLS12 || got.ServerName != "openapi.internal" {
		t.Errorf("unexpected config: min %x, server name %q", got.MinVersion, got.ServerName)
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *TLSConfig
		wantErr string
	}{
		{"nil", nil, ""},
		{"ca only", &TLSConfig{CAFile: "ca.pem"}, ""},
		{"cert without key", &TLSConfig{CertFile: "client.pem"}, "cert_file and key_file"},
		{"key without cert", &TLSConfig{KeyFile: "client-key.pem"}, "cert_file and key_file"},
		{"tls 1.1", &TLSConfig{MinVersion: tls.VersionTLS11}, "below TLS 1.2"},
		{"tls 1.3", &TLSConfig{MinVersion: tls.VersionTLS13}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTLSConfig_BuildLoadsFiles(t *testing.T) {
	certs := tlstest.GenerateTLSCerts(t)

	got, err := (&TLSConfig{
		CAFile:     certs.CAFile,
		CertFile:   certs.CertFile,
		KeyFile:    certs.KeyFile,
		MinVersion: tls.VersionTLS13,
	}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RootCAs == nil {
		t.Error("expected the private CA to be trusted")
	}
	if len(got.Certificates) != 1 {
		t.Errorf("expected one client certificate, got %d", len(got.Certificates))
	}
	if got.MinVersion != tls.VersionTLS13 {
		t.Errorf("expected TLS 1.3 minimum, got %x", got.MinVersion)
	}
}

func TestTLSConfig_BuildFileErrors(t *testing.T) {
	certs := tlstest.GenerateTLSCerts(t)
	tests := []struct {
		name    string
		cfg     TLSConfig
		wantErr string
	}{
		{"missing ca", TLSConfig{CAFile: "/nonexistent/ca.pem"}, "read ca_file"},
		{"ca without certificates", TLSConfig{CAFile: tlstest.WriteInvalidPEM(t, "bad-ca.pem")}, "no certificates"},
		{"missing client key", TLSConfig{CertFile: certs.CertFile, KeyFile: "/nonexistent/key.pem"}, "load client certificate"},
		{"old protocol", TLSConfig{SkipVerify: true, MinVersion: tls.VersionTLS10}, "below TLS 1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Build()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
