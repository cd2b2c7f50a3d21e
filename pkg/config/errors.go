package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when configuration sources cannot be parsed into the struct
	ErrParsingConfig = errors.New("failed to parse configuration into struct")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to a loader
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFiles is returned when the given .env files cannot be loaded
	ErrLoadingEnvFiles = errors.New("failed to load env files")

	// ErrReadingConfigFile is returned when a configuration file cannot be read
	ErrReadingConfigFile = errors.New("failed to read configuration file")
)
