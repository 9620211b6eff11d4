package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables and the secret file
	"strconv" // strconv converts strings to other types
	"strings" // strings trims whitespace around the loaded secret
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The struct is built once at startup and passed
// into components explicitly; there is no ambient global state.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DBUser       string // database username
	DBPass       string // database password (optional)
	DBHost       string // database host address
	DBPort       string // database port number
	DBName       string // database name
	JWTSecret    string // secret used to sign access tokens (see loadSecret)
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
	LoginField   string // login lookup key: "username" or "email"
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),                      // environment (dev/test/prod)
		Port:         must("APP_PORT"),                     // port to bind the HTTP server
		DBUser:       must("DB_USER"),                      // database user
		DBPass:       os.Getenv("DB_PASS"),                 // database password (empty allowed)
		DBHost:       must("DB_HOST"),                      // database host
		DBPort:       must("DB_PORT"),                      // database port
		DBName:       must("DB_NAME"),                      // database name
		JWTSecret:    loadSecret(),                         // signing secret, read once at startup
		AccessTTLMin: envIntDefault("ACCESS_TOKEN_TTL_MIN", 120), // 2 hours unless overridden
		BcryptCost:   envIntDefault("BCRYPT_COST", 10),     // bcrypt cost factor
		LoginField:   envStrDefault("LOGIN_FIELD", "username"),  // one lookup key per deployment
	}
}

// loadSecret resolves the token signing secret.  When JWT_SECRET_FILE is set
// the secret is read from that file (trailing whitespace stripped), which
// keeps it out of the process environment; otherwise the JWT_SECRET variable
// is required.  The secret is loaded exactly once and never rotated at
// runtime.
func loadSecret() string {
	if path := os.Getenv("JWT_SECRET_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("cannot read JWT_SECRET_FILE %s: %v", path, err)
		}
		s := strings.TrimSpace(string(b))
		if s == "" {
			log.Fatalf("JWT_SECRET_FILE %s is empty", path)
		}
		return s
	}
	return must("JWT_SECRET")
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envIntDefault reads an integer environment variable, falling back to def
// when unset.  An unparsable value is a fatal configuration error.
func envIntDefault(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// envStrDefault reads a string environment variable with a default.
func envStrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
