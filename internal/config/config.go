package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Database settings are required; the
// suggestion backend and broker are optional integrations whose absence
// degrades the corresponding feature instead of failing startup.
type Config struct {
	Env    string // application environment (e.g. "dev", "prod")
	Port   string // HTTP port to listen on
	DBUser string // database username
	DBPass string // database password (optional)
	DBHost string // database host address
	DBPort string // database port number
	DBName string // database name

	SuggestURL string // base URL of the genre-suggestion backend (optional)
	SuggestKey string // bearer token for the suggestion backend (optional)

	ReminderHours int // hours between watchlist reminder digests (0 disables)
}

// Load reads configuration values from environment variables and returns
// a Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		SuggestURL:    os.Getenv("SUGGEST_API_URL"),
		SuggestKey:    os.Getenv("SUGGEST_API_KEY"),
		ReminderHours: envInt("REMINDER_EVERY_HOURS", 0),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
