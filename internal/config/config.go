package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// DefaultSuggestionsURL is the location-suggestion provider endpoint the
// service proxies to when SUGGESTIONS_URL is not set.
const DefaultSuggestionsURL = "https://4ulq3vb3dogn4fatjw3uq7kqby0dweob.lambda-url.eu-central-1.on.aws/"

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The credential store and the listing store are
// separate databases on the same server, hence the two DB name fields.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host address
	DBPort         string // database port number
	DBAuthName     string // database holding the users table
	DBAdsName      string // database holding locations and ads
	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	BcryptCost     int    // bcrypt cost for password hashing
	SuggestionsURL string // external location-suggestion endpoint
}

// Load reads configuration values from environment variables and returns a
// Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "3000"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"), // empty allowed
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBAuthName:     must("DB_AUTH_NAME"),
		DBAdsName:      must("DB_ADS_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   getint("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:     getint("BCRYPT_COST", 10),
		SuggestionsURL: getenv("SUGGESTIONS_URL", DefaultSuggestionsURL),
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
