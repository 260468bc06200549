package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageLocal = "local"
	StorageMinIO = "minio"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	RedisURL string

	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// StorageBackend selects where uploaded media blobs live.
	StorageBackend  string
	UploadDir       string
	UploadURLPrefix string

	MinIOEndpoint       string
	MinIOPublicEndpoint string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOBucket         string
	MinIOUseSSL         bool
	MinIOPublicUseSSL   bool

	// MediaExtensions maps content types to file extensions used when an
	// upload arrives without a filename. Overridable via MEDIA_EXT_OVERRIDES
	// ("image/webp=.webp,video/webm=.webm").
	MediaExtensions map[string]string

	SPADistDir  string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  getDurationEnv("JWT_ACCESS_EXPIRY", 15*time.Minute),
		JWTRefreshExpiry: getDurationEnv("JWT_REFRESH_EXPIRY", 7*24*time.Hour),

		StorageBackend:  getEnv("STORAGE_BACKEND", StorageLocal),
		UploadDir:       getEnv("UPLOAD_DIR", "static/uploads"),
		UploadURLPrefix: getEnv("UPLOAD_URL_PREFIX", "/static/uploads/"),

		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOPublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", getEnv("MINIO_ENDPOINT", "localhost:9000")),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:         getEnv("MINIO_BUCKET", "promptpix-media"),
		MinIOUseSSL:         getBoolEnv("MINIO_USE_SSL", false),
		MinIOPublicUseSSL:   getBoolEnv("MINIO_PUBLIC_USE_SSL", true),

		MediaExtensions: loadMediaExtensions(getEnv("MEDIA_EXT_OVERRIDES", "")),

		SPADistDir:  getEnv("SPA_DIST_DIR", "web/dist"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func defaultMediaExtensions() map[string]string {
	return map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
		"video/mp4":  ".mp4",
	}
}

func loadMediaExtensions(overrides string) map[string]string {
	exts := defaultMediaExtensions()
	for _, pair := range strings.Split(overrides, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			continue
		}
		exts[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return exts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
