package models

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NATS     NATSConfig     `mapstructure:"nats"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Tracking TrackingConfig `mapstructure:"tracking"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string `mapstructure:"url"`
}

// NSQConfig contains NSQ consumer configuration
type NSQConfig struct {
	Address         string `mapstructure:"address"`
	LookupAddress   string `mapstructure:"lookup_address"`
	SocialTopic     string `mapstructure:"social_topic"`
	ConsumerChannel string `mapstructure:"consumer_channel"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // in minutes
	Issuer     string `mapstructure:"issuer"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// TrackingConfig contains location tracking specific configuration
type TrackingConfig struct {
	HistoryCap        int     `mapstructure:"history_cap"`
	LocationTTLHours  int     `mapstructure:"location_ttl_hours"`
	PersistTimeoutSec int     `mapstructure:"persist_timeout_sec"`
	Backend           string  `mapstructure:"backend"` // "redis" or "memory"
	DefaultRadiusKm   float64 `mapstructure:"default_radius_km"`
}
