package configs

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

func loadEnv() {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, reading configuration from environment")
		}
	})
}

func EnvMongoURI() string {
	loadEnv()
	if uri := os.Getenv("MONGOURI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017/old_phone_deals"
}

func EnvJWTSecret() string {
	loadEnv()
	return os.Getenv("JWT_SECRET")
}

func EnvSessionSecret() string {
	loadEnv()
	return os.Getenv("SESSION_SECRET")
}

func EnvSMTPHost() string {
	loadEnv()
	return os.Getenv("SMTP_HOST")
}

func EnvSMTPPort() string {
	loadEnv()
	return os.Getenv("SMTP_PORT")
}

func EnvSMTPUser() string {
	loadEnv()
	return os.Getenv("SMTP_USER")
}

func EnvSMTPPass() string {
	loadEnv()
	return os.Getenv("SMTP_PASS")
}

func EnvClientURL() string {
	loadEnv()
	if url := os.Getenv("CLIENT_URL"); url != "" {
		return url
	}
	return "http://localhost:5173"
}

func EnvAdminEmail() string {
	loadEnv()
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		return email
	}
	return "admin@oldphonedeals.com"
}

func EnvAdminPassword() string {
	loadEnv()
	return os.Getenv("ADMIN_PASSWORD")
}

func EnvPort() string {
	loadEnv()
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "3000"
}
