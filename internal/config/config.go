package config // package config loads application configuration from the environment

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Venue layout and the meal catalog are not
// environment values; they live in the JSON documents named by
// VenueConfig and MenuConfig and are loaded by LoadVenue and LoadMenu.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	VenueConfig    string // path to the venue JSON document
	MenuConfig     string // path to the menu JSON document
	MealsStrict    bool   // reject orders referencing meals outside the catalog
	StaffUsers     string // seeded staff accounts, username:password:role;...
	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing
}

// Load reads configuration from environment variables.  Required
// variables are enforced by must(); missing values exit with a fatal
// log message so a misconfigured service never half-starts.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		VenueConfig:    must("VENUE_CONFIG"),
		MenuConfig:     must("MENU_CONFIG"),
		MealsStrict:    envBool("MEALS_STRICT", true),
		StaffUsers:     must("STAFF_USERS"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),
	}
}

// must retrieves a required environment variable, exiting when it is
// unset or empty.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
