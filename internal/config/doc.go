// Package config reads grasschain's environment-variable configuration. The
// values act as defaults for the command-line flags parsed by package cli.
package config
