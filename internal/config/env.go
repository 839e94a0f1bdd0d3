package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env holds runtime configuration. The upstream base URL and the gateway
// checkout key are fixed per deployment, matching the storefront's
// build-time configuration.
type Env struct {
	AppAddr         string
	GinMode         string
	UpstreamBaseURL string
	RazorpayKeyID   string
	SessionSecret   string
	CORSOrigins     []string
	DraftTTL        time.Duration
	UpstreamTimeout time.Duration
}

// LoadEnv reads configuration from the environment, loading .env first when
// present. Missing values fall back to development defaults.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:         getEnv("APP_ADDR", ":8090"),
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:8080/api"),
		RazorpayKeyID:   getEnv("RAZORPAY_KEY_ID", "rzp_test_key"),
		SessionSecret:   getEnv("SESSION_SECRET", "dev-session-secret-change-me"),
		CORSOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		DraftTTL:        getDuration("BOOKING_DRAFT_TTL_MIN", 30) * time.Minute,
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT_SEC", 15) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getDuration(key string, fallback int64) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return time.Duration(fallback)
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return time.Duration(fallback)
	}
	return time.Duration(n)
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
