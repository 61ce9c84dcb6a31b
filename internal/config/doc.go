// Package config defines the pod specification, its YAML loading and
// validation, and environment-driven timeout settings.
package config
