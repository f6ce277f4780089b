package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port          string
	Env           string
	PostgresURL   string
	SessionName   string
	SessionSecret string
	JWTSecret     string
	JWTTTL        time.Duration
	BcryptCost    int
}

// Load reads the configuration from the environment, after merging a .env
// file when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PostgresURL:   getEnv("POSTGRES_CONN_STR", ""),
		SessionName:   getEnv("SESSION_NAME", "tweetbox_session"),
		SessionSecret: getEnv("SESSION_SECRET", "insecure-development-session-key"),
		JWTSecret:     getEnv("JWT_SECRET", "supersecretjwtkey"),
		JWTTTL:        getEnvDuration("JWT_TTL", 72*time.Hour),
		BcryptCost:    getEnvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s\n", key, value, defaultValue)
		return defaultValue
	}
	return d
}
