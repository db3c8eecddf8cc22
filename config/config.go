package config

import (
	"log"
	"os"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret    string
	GeminiAPIKey string
	GeminiModel  string
	ListenAddr   string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from the environment. JWT_SECRET is required;
// GEMINI_API_KEY is optional (insights then always use the rule-based
// fallback).
func Load() {
	AppConfig.JWTSecret = os.Getenv("JWT_SECRET")
	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if AppConfig.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set, insights will use the rule-based fallback")
	}

	AppConfig.GeminiModel = os.Getenv("GEMINI_MODEL")
	if AppConfig.GeminiModel == "" {
		AppConfig.GeminiModel = "gemini-2.5-flash-lite"
	}

	AppConfig.ListenAddr = os.Getenv("LISTEN_ADDR")
	if AppConfig.ListenAddr == "" {
		AppConfig.ListenAddr = ":3000"
	}
}
