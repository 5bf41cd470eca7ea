package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// listenAddr returns the HTTP listen address, overridable via CALC_ADDR.
func listenAddr() string {
	if addr := os.Getenv("CALC_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
