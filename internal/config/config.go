package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	RedisAddress  string
	RedisPassword string
	RedisDB       int
	CartTTL       time.Duration

	RabbitURL string

	JWTSecret string

	// Restaurant origin for delivery distance computation.
	OriginLat float64
	OriginLng float64

	// Delivery fee policy. Single authoritative set of values.
	FreeDistanceKm float64
	FreeOrderTotal int64
	PerKmRate      int64

	SweepInterval   time.Duration
	SweepBatchSize  int
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultCartTTL         = 24 * time.Hour
	defaultSweepInterval   = time.Minute
	defaultSweepBatchSize  = 64
	defaultShutdownTimeout = 10 * time.Second

	// Tashkent restaurant location.
	defaultOriginLat = 41.311081
	defaultOriginLng = 69.240562

	defaultFreeDistanceKm = 3.0
	defaultFreeOrderTotal = 200000
	defaultPerKmRate      = 3000
)

// Load parses configuration from an optional .env file, environment
// variables, and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		RedisAddress:    getString(lookup, "REDIS_ADDRESS", ""),
		RedisPassword:   getString(lookup, "REDIS_PASSWORD", ""),
		RedisDB:         getInt(lookup, "REDIS_DB", 0),
		CartTTL:         getDuration(lookup, "CART_TTL", defaultCartTTL),
		RabbitURL:       getString(lookup, "RABBIT_URL", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		OriginLat:       getFloat(lookup, "ORIGIN_LAT", defaultOriginLat),
		OriginLng:       getFloat(lookup, "ORIGIN_LNG", defaultOriginLng),
		FreeDistanceKm:  getFloat(lookup, "FREE_DISTANCE_KM", defaultFreeDistanceKm),
		FreeOrderTotal:  getInt64(lookup, "FREE_ORDER_TOTAL", defaultFreeOrderTotal),
		PerKmRate:       getInt64(lookup, "PER_KM_RATE", defaultPerKmRate),
		SweepInterval:   getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		SweepBatchSize:  getInt(lookup, "SWEEP_BATCH_SIZE", defaultSweepBatchSize),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("resto", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		cartTTLStr         = cfg.CartTTL.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddress, "redis", cfg.RedisAddress, "Redis address for cart sessions")
	fs.StringVar(&cfg.RabbitURL, "rabbit", cfg.RabbitURL, "RabbitMQ URL for order events")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing staff tokens")
	fs.Float64Var(&cfg.OriginLat, "origin-lat", cfg.OriginLat, "Restaurant latitude")
	fs.Float64Var(&cfg.OriginLng, "origin-lng", cfg.OriginLng, "Restaurant longitude")
	fs.Float64Var(&cfg.FreeDistanceKm, "free-distance", cfg.FreeDistanceKm, "Free delivery radius in km")
	fs.Int64Var(&cfg.FreeOrderTotal, "free-total", cfg.FreeOrderTotal, "Free delivery order total in so'm")
	fs.Int64Var(&cfg.PerKmRate, "per-km-rate", cfg.PerKmRate, "Delivery fee per km in so'm")
	fs.IntVar(&cfg.SweepBatchSize, "sweep-batch", cfg.SweepBatchSize, "Maximum reservations per sweep")
	fs.StringVar(&cartTTLStr, "cart-ttl", cartTTLStr, "Cart session lifetime")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between reservation sweeps")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.CartTTL, err = time.ParseDuration(cartTTLStr); err != nil {
		return nil, fmt.Errorf("invalid cart ttl: %w", err)
	}

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.CartTTL <= 0 {
		cfg.CartTTL = defaultCartTTL
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.SweepBatchSize <= 0 {
		cfg.SweepBatchSize = defaultSweepBatchSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.FreeDistanceKm < 0 {
		cfg.FreeDistanceKm = 0
	}

	if cfg.PerKmRate < 0 {
		cfg.PerKmRate = 0
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
