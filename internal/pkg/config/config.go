package config

import (
	"fmt"
	"strings"

	"github.com/curbsidelabs/trucktrack/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from an optional YAML file with
// environment variable overrides (TRUCKTRACK_SERVER_PORT etc).
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TRUCKTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "trucktrack")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.version", "dev")

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	// Database
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "trucktrack")
	v.SetDefault("database.database", "trucktrack")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// NATS
	v.SetDefault("nats.url", "nats://localhost:4222")

	// NSQ
	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.social_topic", "truck-social-locations")
	v.SetDefault("nsq.consumer_channel", "tracking-service")

	// JWT
	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "trucktrack")

	// Logger
	v.SetDefault("logger.level", "info")

	// Tracking
	v.SetDefault("tracking.history_cap", models.DefaultHistoryCap)
	v.SetDefault("tracking.location_ttl_hours", 24)
	v.SetDefault("tracking.persist_timeout_sec", 3)
	v.SetDefault("tracking.backend", "redis")
	v.SetDefault("tracking.default_radius_km", 1.0)
}
