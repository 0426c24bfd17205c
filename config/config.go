package config

import (
	"os"
)

type Config struct {
	Port     string
	Model    ModelConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ModelConfig struct {
	Method    string // семейство моделей (подкаталог в ModelsDir)
	ModelsDir string // каталог с обученными артефактами
	ConfigDir string // каталог с thresholds.json и feature_bounds.json
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
}

type AuthConfig struct {
	Secret string // если пусто — API работает без авторизации
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8060"),
		Model: ModelConfig{
			Method:    getEnv("MODEL_METHOD", "Cox"),
			ModelsDir: getEnv("MODELS_DIR", "models"),
			ConfigDir: getEnv("CONFIG_DIR", "config"),
		},
		Database: DatabaseConfig{
			// Пустой DB_HOST означает работу без персистентности
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "sarcopenia_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},
		Auth: AuthConfig{
			Secret: getEnv("AUTH_SECRET", ""),
		},
	}
}

// PersistenceEnabled сообщает, настроено ли хранение результатов в БД
func (c *Config) PersistenceEnabled() bool {
	return c.Database.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
