package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server Server
	Redis  Redis
	Auth   Auth
	Rate   Rate
	App    App
}

type Server struct {
	Port string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Auth struct {
	// Accounts seeds the identity registry as comma-separated
	// "username:password:DisplayName" entries.
	Accounts   string
	SessionTTL time.Duration
}

type Rate struct {
	Limit  int
	Window time.Duration
}

type App struct {
	Environment string
	Version     string
	// CreateFaultRate is the probability that a project create attempt
	// fails with a simulated transient error. 0 disables the fault hook.
	CreateFaultRate float64
	SeedDemoData    bool
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: Server{
			Port: getEnv("PORT", "8080"),
		},
		Redis: Redis{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Auth: Auth{
			Accounts:   getEnv("ACCOUNTS", "admin:admin123:Admin,user:user123:User"),
			SessionTTL: getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		},
		Rate: Rate{
			Limit:  getEnvAsInt("RATE_LIMIT", 60),
			Window: getEnvAsDuration("RATE_WINDOW", time.Minute),
		},
		App: App{
			Environment:     getEnv("APP_ENV", "development"),
			Version:         getEnv("APP_VERSION", "2.0.0"),
			CreateFaultRate: getEnvAsFloat64("CREATE_FAULT_RATE", 0.05),
			SeedDemoData:    getEnvAsBool("SEED_DEMO_DATA", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Redis.Addr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.Auth.Accounts == "" {
		return fmt.Errorf("ACCOUNTS is required")
	}

	if c.Rate.Limit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive")
	}

	if c.App.CreateFaultRate < 0 || c.App.CreateFaultRate > 1 {
		return fmt.Errorf("CREATE_FAULT_RATE must be between 0 and 1")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
