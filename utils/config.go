package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	LLM      LLMConfig
	Data     DataConfig
	Database DatabaseConfig
	Server   ServerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name       string
	Version    string
	RandomSeed int64 // 0 means seed from the clock
}

// LLMConfig holds the text-generation service configuration
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

// DataConfig holds the locations of the optional dataset files
type DataConfig struct {
	SlangPath  string
	EmojiPath  string
	RedditPath string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string // empty disables the generated-comment archive
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port               int
	PublicDir          string
	RateLimitPerMinute int
}

// LoadConfig loads configuration from the environment, reading envPath first if it exists
func LoadConfig(envPath string, log *logrus.Logger) (*Config, error) {
	if envPath == "" {
		envPath = ".env"
	}

	// the .env file is a convenience; real deployments set the environment directly
	if err := godotenv.Load(envPath); err != nil {
		log.WithError(err).WithField("file", envPath).Warn("No .env file loaded, using process environment")
	}

	config := &Config{
		App: AppConfig{
			Name:       getEnv("APP_NAME", "Reddit Simulator"),
			Version:    getEnv("APP_VERSION", "1.0.0"),
			RandomSeed: int64(getEnvAsInt("RANDOM_SEED", 0)),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			MaxTokens:   getEnvAsInt("LLM_MAX_TOKENS", 150),
			Temperature: getEnvAsFloat("LLM_TEMPERATURE", 0.8),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
			MaxRetries:  getEnvAsInt("LLM_MAX_RETRIES", 0),
		},
		Data: DataConfig{
			SlangPath:  getEnv("SLANG_DATA_PATH", "./slang_data.json"),
			EmojiPath:  getEnv("EMOJI_DATA_PATH", "./data/emoji_dataset/full_emoji.csv"),
			RedditPath: getEnv("REDDIT_DATA_PATH", "./reddit_posts.json"),
		},
		Database: DatabaseConfig{
			Path: getEnvOrEmpty("DATABASE_PATH", "./data/generated.db"),
		},
		Server: ServerConfig{
			Port:               getEnvAsInt("SERVER_PORT", 3000),
			PublicDir:          getEnv("PUBLIC_DIR", "./public"),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 30),
		},
	}

	// validation
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	log.WithField("file", envPath).Info("Config loaded successfully")
	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvOrEmpty is like getEnv but an explicitly empty variable wins over the default
func getEnvOrEmpty(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	// the only hard requirement; everything else has a working default
	if config.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}
	if config.LLM.MaxTokens < 1 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive")
	}
	if config.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if config.LLM.MaxRetries < 0 {
		return fmt.Errorf("LLM_MAX_RETRIES must not be negative")
	}
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	if config.Server.RateLimitPerMinute < 1 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	// if we are storing the db in a nested directory, create the directory
	if config.Database.Path != "" {
		dbDir := filepath.Dir(config.Database.Path)
		if dbDir != "." && dbDir != "" {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	return nil
}
