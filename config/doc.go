// Package config provides configuration loading and validation for the
// radiowatch service.
//
// It uses Viper to load a YAML config file, godotenv for .env files, and
// environment variable overrides with the RADIOWATCH_ prefix and
// underscore-separated paths (e.g. RADIOWATCH_MONITOR_STORE_CAPACITY).
package config
