// Package config defines the application configuration structures and
// loads them from environment variables.
package config
