package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to an
// environment variable. Required values abort startup when missing; everything
// else falls back to a sensible local-development default.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	DBUser          string        // database username
	DBPass          string        // database password (optional)
	DBHost          string        // database host address
	DBPort          string        // database port number
	DBName          string        // database name
	JWTSecret       string        // secret used to sign session tokens; no default
	TokenTTLDays    int           // session token time-to-live in days
	BcryptCost      int           // bcrypt cost for password hashing
	GenerateURL     string        // generation service endpoint
	GenerateModel   string        // model name sent to the generation service
	GenerateTimeout time.Duration // upper bound for one generation call
}

// Load reads configuration from environment variables and returns a Config.
// JWT_SECRET and the database coordinates are mandatory: running with a
// baked-in signing secret would let anyone mint valid sessions, so there is
// deliberately no fallback and the process exits instead.
func Load() Config {
	return Config{
		Env:             getenv("APP_ENV", "dev"),
		Port:            getenv("APP_PORT", "8080"),
		DBUser:          must("DB_USER"),
		DBPass:          os.Getenv("DB_PASS"),
		DBHost:          getenv("DB_HOST", "127.0.0.1"),
		DBPort:          getenv("DB_PORT", "3306"),
		DBName:          must("DB_NAME"),
		JWTSecret:       must("JWT_SECRET"),
		TokenTTLDays:    getint("TOKEN_TTL_DAYS", 7),
		BcryptCost:      getint("BCRYPT_COST", 10),
		GenerateURL:     getenv("GENERATE_URL", "http://localhost:11434/api/generate"),
		GenerateModel:   getenv("GENERATE_MODEL", "llama3"),
		GenerateTimeout: getdur("GENERATE_TIMEOUT", 60*time.Second),
	}
}

// must retrieves the value of a required environment variable. If the variable
// is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, v)
	}
	return d
}
