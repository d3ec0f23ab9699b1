// Package config provides functionality for loading and managing application configuration.
//
// Settings are read with viper from an optional YAML file, overridden by RSA_TOOLKIT_*
// environment variables, and checked with validator struct tags before use.
package config
