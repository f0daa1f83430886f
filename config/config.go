package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded = false

// Config đọc biến môi trường, ưu tiên file .env nếu có
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file, reading from environment")
		}
		loaded = true
	}
	return os.Getenv(key)
}
