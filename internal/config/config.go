package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Pricing PricingConfig `mapstructure:"pricing" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig selects and configures the key-value storage backend the
// repositories persist through.
type StorageConfig struct {
	// Backend selects the storage port implementation.
	Backend string `mapstructure:"backend" validate:"required,oneof=memory file redis postgres"`

	// DecodePolicy decides what happens when a persisted record cannot be
	// reconstructed: "drop" silently skips it (the historical behavior),
	// "fail" surfaces the corruption to the caller.
	DecodePolicy string `mapstructure:"decode_policy" validate:"required,oneof=drop fail"`

	// FileDir is the data directory for the file backend.
	FileDir string `mapstructure:"file_dir" validate:"required_if=Backend file"`

	// RedisAddr is the host:port of the Redis server for the redis backend.
	RedisAddr     string `mapstructure:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`

	// PostgresURL is the connection URL for the postgres backend.
	PostgresURL string `mapstructure:"postgres_url" validate:"required_if=Backend postgres"`
}

// PricingConfig holds the placeholder pricing knobs. The flat daily rate is
// the stop-gap booking cost input until per-space pricing is wired in.
type PricingConfig struct {
	FlatDailyRate float64 `mapstructure:"flat_daily_rate" validate:"required,gt=0"`
}
