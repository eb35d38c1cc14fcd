package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultPort             = "5000"
	DefaultCurrency         = "inr"
	DefaultSuccessURL       = "https://example.com/success"
	DefaultCancelURL        = "https://example.com/cancel"
	DefaultMetricsNamespace = "Storefront"
)

// Config is the process configuration, read once from the environment.
type Config struct {
	Port     string
	RunLocal bool
	LogLevel string

	StripeSecretKey string
	Currency        string
	SuccessURL      string
	CancelURL       string

	// ClientDir is the prebuilt client bundle; empty when none was found.
	ClientDir string

	CatalogTable     string
	EventsQueueURL   string
	MetricsNamespace string
}

// Load reads the configuration from environment variables.
func Load() Config {
	return Config{
		Port:             getEnv("PORT", DefaultPort),
		RunLocal:         os.Getenv("RUN_LOCAL") == "true",
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		Currency:         strings.ToLower(getEnv("CHECKOUT_CURRENCY", DefaultCurrency)),
		SuccessURL:       getEnv("CHECKOUT_SUCCESS_URL", DefaultSuccessURL),
		CancelURL:        getEnv("CHECKOUT_CANCEL_URL", DefaultCancelURL),
		ClientDir:        findClientDir(os.Getenv("CLIENT_DIR")),
		CatalogTable:     os.Getenv("CATALOG_TABLE"),
		EventsQueueURL:   os.Getenv("EVENTS_QUEUE_URL"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", DefaultMetricsNamespace),
	}
}

// CheckoutEnabled reports whether a payment provider credential is configured.
func (c Config) CheckoutEnabled() bool {
	return c.StripeSecretKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// findClientDir prefers an explicit directory, then client/dist, then client/build.
func findClientDir(explicit string) string {
	candidates := []string{filepath.Join("client", "dist"), filepath.Join("client", "build")}
	if explicit != "" {
		candidates = []string{explicit}
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
