package container

import (
	"nird-intake/internal/config"
	"nird-intake/pkg/logger"
	"nird-intake/pkg/redis"
)

// Container holds the shared application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logger.Logger
	RedisClient *redis.Client
}

// New creates a new dependency container. Redis is optional: when no
// REDIS_URL is configured, or the connection fails, the service runs
// without caching.
func New(cfg *config.Config, log *logger.Logger) (*Container, error) {
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, log.Logger)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			log.Info("Redis client initialized successfully")
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	return &Container{
		Config:      cfg,
		Logger:      log,
		RedisClient: redisClient,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetRedisClient returns the Redis client, nil when caching is disabled
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// Close releases the container's resources
func (c *Container) Close() error {
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}
