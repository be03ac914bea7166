// Package config loads configuration from YAML files, .env files and the
// process environment using Viper.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("billing-sync", &cfg,
//	    config.WithEnvBindings(map[string]string{"app_key": "OpenApiAppKey"}),
//	)
//
// Lookup order, lowest to highest precedence: defaults, config file,
// explicitly bound environment variables, then UPPER_SNAKE environment
// variables mapped onto nested keys (HTTP_TIMEOUT -> http.timeout).
// A .env file is loaded into the environment first when one is found;
// variables already set in the process win over the file.
package config
