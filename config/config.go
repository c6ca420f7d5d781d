package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"jalwa-telegram/models"
)

type Config struct {
	DB         DBConfig
	Telegram   TelegramConfig
	Restaurant RestaurantConfig
	Assistant  AssistantConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type TelegramConfig struct {
	Token string
}

type RestaurantConfig struct {
	Contact models.ContactInfo
}

type AssistantConfig struct {
	// MenuSource is "db" (Postgres catalog) or "static" (built-in catalog).
	MenuSource string
	// ThinkDelay is how long the bot pretends to think before replying.
	ThinkDelay time.Duration
}

const (
	MenuSourceDB     = "db"
	MenuSourceStatic = "static"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	delayMs, _ := strconv.Atoi(getEnv("THINK_DELAY_MS", "800"))

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "jalwa"),
		},
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Restaurant: RestaurantConfig{
			Contact: models.ContactInfo{
				Address: getEnv("RESTAURANT_ADDRESS", "84 Glenridge Ave, St. Catharines, ON"),
				Phone:   getEnv("RESTAURANT_PHONE", "(905) 688-2662"),
				Hours:   splitLines(getEnv("RESTAURANT_HOURS", "Mon-Thu: 11:30 AM - 9:30 PM|Fri-Sat: 11:30 AM - 10:30 PM|Sun: 12:00 PM - 9:00 PM")),
			},
		},
		Assistant: AssistantConfig{
			MenuSource: getEnv("MENU_SOURCE", MenuSourceDB),
			ThinkDelay: time.Duration(delayMs) * time.Millisecond,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// splitLines turns a pipe-separated env value into display lines.
func splitLines(v string) []string {
	var lines []string
	for _, part := range strings.Split(v, "|") {
		if part = strings.TrimSpace(part); part != "" {
			lines = append(lines, part)
		}
	}
	return lines
}
