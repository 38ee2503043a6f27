package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Firebase FirebaseConfig
	Chain    ChainConfig
	Pinning  PinningConfig
	AI       AIConfig
	Archive  ArchiveConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	DSN string
}

type FirebaseConfig struct {
	CredentialsPath string
}

// ChainConfig points at the contract gateway that fronts the project
// registry contract.
type ChainConfig struct {
	GatewayURL      string
	ContractAddress string
}

type PinningConfig struct {
	BaseURL string
	JWT     string
}

type AIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// ArchiveConfig enables the S3 archive copy of uploaded files when Bucket
// is set.
type ArchiveConfig struct {
	Bucket string
	Region string
	Prefix string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			DSN: getEnv("DB_DSN", ""),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		},
		Chain: ChainConfig{
			GatewayURL:      getEnv("CHAIN_GATEWAY_URL", "http://localhost:8545"),
			ContractAddress: getEnv("CONTRACT_ADDRESS", "0xaF7993E02C51cb2c40837eE8c58750490112d3AE"),
		},
		Pinning: PinningConfig{
			BaseURL: getEnv("PINNING_BASE_URL", "https://api.pinata.cloud"),
			JWT:     getEnv("PINNING_JWT", ""),
		},
		AI: AIConfig{
			BaseURL: getEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com"),
			APIKey:  getEnv("AI_API_KEY", ""),
			Model:   getEnv("AI_MODEL", "gemini-1.5-flash"),
		},
		Archive: ArchiveConfig{
			Bucket: getEnv("ARCHIVE_BUCKET", ""),
			Region: getEnv("ARCHIVE_REGION", "us-east-1"),
			Prefix: getEnv("ARCHIVE_PREFIX", "uploads/"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
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
