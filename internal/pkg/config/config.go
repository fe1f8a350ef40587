package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// InsecureDefaultJWTSecret is used when JWT_SECRET is unset so the process
// can still start in local development. It is a known weak default; main
// logs a warning whenever it is in effect. Never deploy without JWT_SECRET.
const InsecureDefaultJWTSecret = "defaultSecret"

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=todo_list"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// ResolveJWTSecret returns the configured signing secret. When JWT_SECRET is
// absent it returns InsecureDefaultJWTSecret and insecure=true so the caller
// can flag the configuration risk.
func (c *Config) ResolveJWTSecret() (secret string, insecure bool) {
	if c.JWTSecret == "" {
		return InsecureDefaultJWTSecret, true
	}
	return c.JWTSecret, false
}
