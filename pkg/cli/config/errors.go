package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound   = goerr.New("configuration file not found")
	ErrInvalidConfig    = goerr.New("invalid configuration")
	ErrDuplicateTypeID  = goerr.New("duplicate component type ID")
	ErrMissingLabel     = goerr.New("component type label is required")
	ErrMissingCategory  = goerr.New("component type category is required")
	ErrInvalidFieldType = goerr.New("invalid field type")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	TypeIDKey     = "type_id"
	TypeIndexKey  = "type_index"
)
