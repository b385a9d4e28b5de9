package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini / model configuration.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Tier-dependent generation parameters. The token budget is deliberately
	// configuration, not a hardcoded constant.
	AIMaxTokensFree    int     `mapstructure:"AI_MAX_TOKENS_FREE"`
	AIMaxTokensPro     int     `mapstructure:"AI_MAX_TOKENS_PRO"`
	AITemperatureFree  float64 `mapstructure:"AI_TEMPERATURE_FREE"`
	AITemperaturePro   float64 `mapstructure:"AI_TEMPERATURE_PRO"`
	AIMaxMessageLength int     `mapstructure:"AI_MAX_MESSAGE_LENGTH"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("AI_MAX_TOKENS_FREE", 4000)
	viper.SetDefault("AI_MAX_TOKENS_PRO", 20000)
	viper.SetDefault("AI_TEMPERATURE_FREE", 0.3)
	viper.SetDefault("AI_TEMPERATURE_PRO", 0.7)
	viper.SetDefault("AI_MAX_MESSAGE_LENGTH", 1000)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
