package config

import (
	"os"
	"strings"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

type Config struct {
	GoogleClientID      string
	GoogleClientSecret  string
	GoogleRedirectURI   string
	ServiceAccountEmail string
	ServiceAccountKey   string
	AllowedEmails       []string
	RedisURI            string
	FrontendURL         string
	R2                  R2
	SecretKey           string
	CookieName          string
}

func LoadConfig() *Config {
	return &Config{
		GoogleClientID:      getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:  getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURI:   getEnv("GOOGLE_REDIRECT_URI", "http://localhost:3000/login/callback"),
		ServiceAccountEmail: getEnv("GOOGLE_SERVICE_ACCOUNT_EMAIL", ""),
		ServiceAccountKey:   getEnv("GOOGLE_PRIVATE_KEY", ""),
		AllowedEmails:       splitList(getEnv("ALLOWED_EMAILS", "")),
		RedisURI:            getEnv("REDIS_URI", ""),
		FrontendURL:         getEnv("FRONTEND_URL", "http://localhost:5173"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
			PublicURL:  getEnv("R2_PUBLIC_URL", ""),
		},
		SecretKey:  getEnv("SECRET_KEY", ""),
		CookieName: getEnv("COOKIE_NAME", "sheetcal_session"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
