package httpclient

import (
	"testing"
	"time"

	"github.com/kbukum/openapi-go/resilience"
	"github.com/kbukum/openapi-go/security"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{HTTP2: &HTTP2Config{}}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if cfg.MaxIdleConnsPerHost != defaultMaxIdleConnsPerHost {
		t.Errorf("expected default idle conns, got %d", cfg.MaxIdleConnsPerHost)
	}
	if cfg.HTTP2.ReadIdleTimeout != defaultReadIdleTimeout || cfg.HTTP2.PingTimeout != defaultPingTimeout {
		t.Errorf("expected http2 defaults, got %+v", cfg.HTTP2)
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{Timeout: 10 * time.Second, MaxIdleConnsPerHost: 2}
	cfg.ApplyDefaults()
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Timeout)
	}
	if cfg.MaxIdleConnsPerHost != 2 {
		t.Errorf("expected 2 idle conns, got %d", cfg.MaxIdleConnsPerHost)
	}
	if cfg.HTTP2 != nil {
		t.Error("expected HTTP2 to stay nil")
	}
}

func TestConfig_ApplyDefaults_KeepsNegative(t *testing.T) {
	cfg := Config{Timeout: -time.Second, MaxIdleConnsPerHost: -1}
	cfg.ApplyDefaults()
	if cfg.Timeout != -time.Second || cfg.MaxIdleConnsPerHost != -1 {
		t.Fatalf("expected negative values to survive defaults, got %+v", cfg)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected negative settings to fail validation")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Timeout: 10 * time.Second}, false},
		{"negative timeout", Config{Timeout: -1}, true},
		{"negative idle conns", Config{Timeout: time.Second, MaxIdleConnsPerHost: -1}, true},
		{"mismatched tls", Config{Timeout: time.Second, TLS: &security.TLSConfig{CertFile: "cert.pem"}}, true},
		{"negative rate", Config{Timeout: time.Second, RateLimiter: &resilience.RateLimiterConfig{Rate: -1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}
