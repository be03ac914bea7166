package openapi

import (
	"fmt"

	"github.com/kbukum/openapi-go/errors"
	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/logger"
	"github.com/kbukum/openapi-go/util"
	"github.com/kbukum/openapi-go/validation"
)

// Endpoints holds the base URL of each endpoint type. Only API is required;
// calls routed to an unset endpoint fail with a configuration error.
type Endpoints struct {
	API   string `yaml:"api" mapstructure:"api" validate:"required,http_url"`
	Cloud string `yaml:"cloud" mapstructure:"cloud" validate:"omitempty,http_url"`
	HPC   string `yaml:"hpc" mapstructure:"hpc" validate:"omitempty,http_url"`
	Sync  string `yaml:"sync" mapstructure:"sync" validate:"omitempty,http_url"`
}

// Config is the client configuration.
type Config struct {
	// AppKey identifies the application. It is sent as the AppKey query parameter.
	AppKey string `yaml:"app_key" mapstructure:"app_key" validate:"required"`
	// AppSecret signs requests. It is never sent.
	AppSecret string `yaml:"app_secret" mapstructure:"app_secret" validate:"required"`
	// UserID is sent in the x-ys-user-id header.
	UserID string `yaml:"user_id" mapstructure:"user_id" validate:"required"`
	// Zone is the default zone for zone-scoped calls.
	Zone string `yaml:"zone" mapstructure:"zone"`
	// Version is sent in the X-Ys-Version header.
	Version string `yaml:"version" mapstructure:"version" validate:"required"`

	Endpoints Endpoints         `yaml:"endpoints" mapstructure:"endpoints"`
	HTTP      httpclient.Config `yaml:"http" mapstructure:"http"`
	Logging   logger.Config     `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value transport and logging settings.
func (c *Config) ApplyDefaults() {
	c.HTTP.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate checks required fields and endpoint URLs. Failures are
// CONFIG_ERROR with the offending fields in the details.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		cfgErr := errors.Config("invalid configuration: " + err.Error()).WithCause(err)
		if appErr, ok := errors.AsAppError(err); ok {
			cfgErr.WithDetails(appErr.Details)
		}
		return cfgErr
	}
	// Zero values mean "use the default", so check the settings New would use.
	httpCfg, logCfg := c.HTTP, c.Logging
	if httpCfg.HTTP2 != nil {
		h2 := *httpCfg.HTTP2
		httpCfg.HTTP2 = &h2
	}
	httpCfg.ApplyDefaults()
	logCfg.ApplyDefaults()
	if err := httpCfg.Validate(); err != nil {
		return errors.Config("invalid http configuration: " + err.Error()).WithCause(err)
	}
	if err := logCfg.Validate(); err != nil {
		return errors.Config("invalid logging configuration: " + err.Error()).WithCause(err)
	}
	return nil
}

// BaseURL returns the base URL configured for t.
func (c *Config) BaseURL(t EndpointType) (string, error) {
	var u string
	switch t {
	case EndpointAPI:
		u = c.Endpoints.API
	case EndpointCloud:
		u = c.Endpoints.Cloud
	case EndpointHPC:
		u = c.Endpoints.HPC
	case EndpointSync:
		u = c.Endpoints.Sync
	default:
		return "", errors.Config(fmt.Sprintf("unknown endpoint type %d", int(t)))
	}
	if u == "" {
		return "", errors.Config(fmt.Sprintf("no base URL configured for %s endpoint", t)).
			WithDetail("endpoint_type", t.String())
	}
	return u, nil
}

// String returns a representation safe for logs: the secret is masked.
func (c Config) String() string {
	return fmt.Sprintf("Config{AppKey:%s AppSecret:%s UserID:%s Zone:%s Version:%s API:%s}",
		c.AppKey, util.MaskSecret(c.AppSecret, 2), c.UserID, c.Zone, c.Version, c.Endpoints.API)
}
