package openapi

import (
	"github.com/kbukum/openapi-go/config"
	"github.com/kbukum/openapi-go/errors"
)

// ServiceName names the config files LoadConfig searches for, e.g.
// ./config/openapi.yml and ./.env.openapi.
const ServiceName = "openapi"

// Environment variables read by LoadConfig.
const (
	EnvAppKey        = "OpenApiAppKey"
	EnvAppSecret     = "OpenApiAppSecret"
	EnvUserID        = "OpenApiUserId"
	EnvZone          = "OpenApiZone"
	EnvVersion       = "XYsVersion"
	EnvEndpoint      = "OpenApiEndpoint"
	EnvCloudEndpoint = "OpenApiCloudEndpoint"
	EnvHPCEndpoint   = "OpenApiHpcEndpoint"
	EnvSyncEndpoint  = "OpenApiSyncEndpoint"
)

var envBindings = map[string]string{
	"app_key":         EnvAppKey,
	"app_secret":      EnvAppSecret,
	"user_id":         EnvUserID,
	"zone":            EnvZone,
	"version":         EnvVersion,
	"endpoints.api":   EnvEndpoint,
	"endpoints.cloud": EnvCloudEndpoint,
	"endpoints.hpc":   EnvHPCEndpoint,
	"endpoints.sync":  EnvSyncEndpoint,
}

// requiredSettings are checked in order so the first missing one is reported.
var requiredSettings = []struct {
	env string
	get func(*Config) string
}{
	{EnvAppKey, func(c *Config) string { return c.AppKey }},
	{EnvAppSecret, func(c *Config) string { return c.AppSecret }},
	{EnvUserID, func(c *Config) string { return c.UserID }},
	{EnvZone, func(c *Config) string { return c.Zone }},
	{EnvEndpoint, func(c *Config) string { return c.Endpoints.API }},
	{EnvVersion, func(c *Config) string { return c.Version }},
}

// LoadConfig reads the client configuration from an optional YAML file, an
// optional .env file and the environment, in increasing precedence. The
// OpenApi* and XYsVersion variables are bound to their config keys.
//
// A missing credential, user, zone, API endpoint or version fails with a
// CONFIG_ERROR naming the environment variable.
func LoadConfig(opts ...config.LoaderOption) (Config, error) {
	var cfg Config
	opts = append([]config.LoaderOption{config.WithEnvBindings(envBindings)}, opts...)
	if err := config.LoadConfig(ServiceName, &cfg, opts...); err != nil {
		return Config{}, errors.Config("load configuration: " + err.Error()).WithCause(err)
	}

	for _, s := range requiredSettings {
		if s.get(&cfg) == "" {
			return Config{}, errors.MissingConfig(s.env)
		}
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
