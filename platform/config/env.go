package config

import (
	"strconv"

	"github.com/joho/godotenv"
)

func loadDotEnv() {
	_ = godotenv.Load()
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
