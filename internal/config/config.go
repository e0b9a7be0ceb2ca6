package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrParameterNotSet = errors.New("config parameter is not set")
)

type Config struct {
	LogLevel            string
	RunAddress          string
	DatabaseURI         string
	RedisAddress        string
	Timezone            string
	QuotaServiceAddress string
	JWTSecret           string `json:"-"`
	JWTTTL              time.Duration
}

func NewConfig() (*Config, error) {
	return parse(flag.CommandLine, os.Args[1:])
}

func parse(fs *flag.FlagSet, args []string) (*Config, error) {
	// a missing .env file is fine, real env always wins
	_ = godotenv.Load()

	logLevel := fs.String("log-level", "info", "log level (default: info)")
	runAddress := fs.String("a", ":8080", "listen address")
	databaseURI := fs.String("d", "", "database connection string")
	redisAddress := fs.String("redis", "", "redis address host:port")
	timezone := fs.String(
		"tz",
		"Local",
		"time zone used for submission quota windows",
	)
	quotaServiceAddress := fs.String(
		"q",
		"",
		"quota service address, refunds are not sent when empty",
	)
	JWTSecret := fs.String(
		"jwt-secret",
		"",
		"jwt secret key for token encryption",
	)
	JWTTTL := fs.String("jwt-ttl", "24h", "jwt token ttl (default: 24h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	finalLogLevel := envOr("LOG_LEVEL", *logLevel)
	finalRunAddress := envOr("RUN_ADDRESS", *runAddress)
	finalDatabaseURI := envOr("DATABASE_URI", *databaseURI)
	finalRedisAddress := envOr("REDIS_ADDRESS", *redisAddress)
	finalTimezone := envOr("TIMEZONE", *timezone)
	finalQuotaServiceAddress := envOr(
		"QUOTA_SERVICE_ADDRESS",
		*quotaServiceAddress,
	)
	finalJWTSecret := envOr("JWT_SECRET", *JWTSecret)
	finalJWTTTL := envOr("JWT_TTL", *JWTTTL)

	if finalDatabaseURI == "" {
		return nil, fmt.Errorf("database URI error %w", ErrParameterNotSet)
	}

	if finalRedisAddress == "" {
		return nil, fmt.Errorf("redis address error %w", ErrParameterNotSet)
	}

	if finalJWTSecret == "" {
		return nil, fmt.Errorf("no jwt token set %w", ErrParameterNotSet)
	}

	jwtTTL, err := time.ParseDuration(finalJWTTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid jwt ttl %q: %w", finalJWTTTL, err)
	}

	if _, err := time.LoadLocation(finalTimezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", finalTimezone, err)
	}

	return &Config{
		LogLevel:            finalLogLevel,
		RunAddress:          finalRunAddress,
		DatabaseURI:         finalDatabaseURI,
		RedisAddress:        finalRedisAddress,
		Timezone:            finalTimezone,
		QuotaServiceAddress: finalQuotaServiceAddress,
		JWTSecret:           finalJWTSecret,
		JWTTTL:              jwtTTL,
	}, nil
}

// Location returns the zone quota windows are computed in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) String() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("config marshal error: %v", err)
	}
	return string(b)
}

func envOr(key, fallback string) string {
	if env := os.Getenv(key); env != "" {
		return env
	}
	return fallback
}
