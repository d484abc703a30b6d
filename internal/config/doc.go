// Package config loads and validates application settings from environment
// variables and an optional config file. Settings are grouped by concern
// (server, storage, pricing) and validated before the rest of the
// application sees them.
package config
