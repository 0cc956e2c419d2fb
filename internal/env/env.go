package env

import (
	"log"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// actual environment variables
var PORT int
var DB_PATH string

const (
	defaultPort   = 3000
	defaultDBPath = "./db.sqlite"
)

// Init loads an optional .env file and resolves the service configuration.
// Every variable has a default, so a bare environment is fully valid.
func Init(envRoot string) {
	loadEnv(envRoot)

	PORT = intFromEnv("PORT", defaultPort)

	DB_PATH = strings.TrimSpace(os.Getenv("DB_PATH"))
	if DB_PATH == "" {
		DB_PATH = defaultDBPath
	}
}

func loadEnv(envRoot string) {
	if envRoot == "" {
		return
	}

	envPath := path.Join(envRoot, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return
	}

	if err := godotenv.Overload(envPath); err != nil {
		log.Printf("failed to load env file %s: %v", envPath, err)
	}
}

// intFromEnv falls back to the default on an absent or unparsable value.
func intFromEnv(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return parsed
}
