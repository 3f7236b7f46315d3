package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Paging limits for public list endpoints.
const (
	DefaultLimitPosts    = 20
	MaxLimitPosts        = 100
	DefaultLimitComments = 20
	MaxLimitComments     = 100
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
}

// Load reads configuration from the environment. Values from a local .env
// file override the inherited environment.
func Load() Config {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		Port:      os.Getenv("PORT"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.DBName == "" {
		cfg.DBName = "blogdb"
	}
	return cfg
}

// MustLoad is Load plus hard failures for settings the server cannot run without.
func MustLoad() Config {
	cfg := Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI not set in environment")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	return cfg
}
