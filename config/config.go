package config

import "os"

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBName     string
	DBPassword string
	JWTSecret  string
	CORSOrigin string
	UploadDir  string
	BaseURL    string
}

func LoadConfig() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBName:     getEnv("DB_NAME", "cafepos"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
