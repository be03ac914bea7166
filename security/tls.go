package security

import (
	"cmp"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// TLSConfig configures how the client verifies the OpenAPI gateway and,
// for mTLS deployments, how it presents itself. The zero value keeps the
// system roots and Go's defaults.
type TLSConfig struct {
	// CAFile is a PEM bundle trusted in place of the system roots, for
	// gateways behind a private CA.
	CAFile string `yaml:"ca_file" mapstructure:"ca_file"`
	// CertFile and KeyFile hold the client certificate. Set both or neither.
	CertFile string `yaml:"cert_file" mapstructure:"cert_file"`
	KeyFile  string `yaml:"key_file" mapstructure:"key_file"`
	// ServerName overrides the name checked against the gateway certificate.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`
	// SkipVerify turns off certificate verification. Test setups only.
	SkipVerify bool `yaml:"skip_verify" mapstructure:"skip_verify"`
	// MinVersion defaults to TLS 1.2 and may not be lower.
	MinVersion uint16 `yaml:"min_version" mapstructure:"min_version"`
}

// Validate reports settings that can never produce a working handshake.
func (c *TLSConfig) Validate() error {
	if c == nil {
		return nil
	}
	if (c.CertFile == "") != (c.KeyFile == "") {
		return errors.New("tls: cert_file and key_file must be set together")
	}
	if c.MinVersion != 0 && c.MinVersion < tls.VersionTLS12 {
		return fmt.Errorf("tls: min_version %s is below TLS 1.2", tls.VersionName(c.MinVersion))
	}
	return nil
}

// Build loads the configured files into a *tls.Config. It returns nil, nil
// for a nil or zero config so the transport keeps its own defaults.
func (c *TLSConfig) Build() (*tls.Config, error) {
	if c == nil || *c == (TLSConfig{}) {
		return nil, nil
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cfg := &tls.Config{
		MinVersion:         cmp.Or(c.MinVersion, uint16(tls.VersionTLS12)),
		ServerName:         c.ServerName,
		InsecureSkipVerify: c.SkipVerify,
	}
	if c.CAFile != "" {
		pem, err := os.ReadFile(c.CAFile)
		if err != nil {
			return nil, fmt.Errorf("tls: read ca_file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("tls: no certificates in ca_file %s", c.CAFile)
		}
		cfg.RootCAs = pool
	}
	if c.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("tls: load client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}
	return cfg, nil
}
