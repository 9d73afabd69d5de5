package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	DatabaseDSN string

	AuthProviderURL  string
	AuthJWTPublicKey string
	OwnerOpenID      string

	GHLAPIBase    string
	GHLAPIKey     string
	GHLLocationID string

	RegistryFeedToken string
	PublicSiteURL     string
}

func Load() (Config, error) {
	// Optional .env for local development.
	_ = godotenv.Load()

	service := getenv("SERVICE_NAME")
	if service == "" {
		service = "harvest"
	}

	port := getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		DatabaseDSN: getenv("DATABASE_URL"),

		AuthProviderURL:  getenv("AUTH_PROVIDER_URL"),
		AuthJWTPublicKey: os.Getenv("AUTH_JWT_PUBLIC_KEY"),
		OwnerOpenID:      getenv("OWNER_OPEN_ID"),

		GHLAPIBase:    getenv("GHL_API_BASE"),
		GHLAPIKey:     getenv("GHL_API_KEY"),
		GHLLocationID: getenv("GHL_LOCATION_ID"),

		RegistryFeedToken: getenv("REGISTRY_FEED_TOKEN"),
		PublicSiteURL:     strings.TrimRight(getenv("PUBLIC_SITE_URL"), "/"),
	}, nil
}

func getenv(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}
