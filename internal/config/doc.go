// Package config handles loading and validating the application
// configuration from environment variables and optional config files.
package config
