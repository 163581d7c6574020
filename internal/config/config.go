package config

import (
	"log"
	"os"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	LogFile   string
	LogLevel  string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shoply.db"
	} // sqlite file in project root
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "shoply-dev-secret"
		log.Printf("[config] JWT_SECRET not set, using insecure dev default")
	}
	logFile := os.Getenv("LOG_FILE")
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, LogFile: logFile, LogLevel: logLevel}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s LOG_LEVEL=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.LogLevel)
	return cfg
}
