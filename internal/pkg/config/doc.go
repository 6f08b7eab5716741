// Package config provides functionality for loading and validating application configuration.
//
// Settings are read from YAML files, optionally overridden from the environment,
// and validated before any component is constructed from them.
package config
