package config

import "os"

// Config holds everything the process reads from the environment. It is
// built once in main and handed to the components that need it; nothing
// else touches os.Getenv.
type Config struct {
	Env         string // "development" or "production"
	DatabaseURL string // required in production
	JWTSecret   string
	Port        string
}

const defaultSecret = "superclaveultrasecreta_ensaladazo"

func Load() Config {
	cfg := Config{
		Env:         getenv("ENV", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", defaultSecret),
		Port:        getenv("PORT", "3004"),
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
