package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	ServerPort         string `mapstructure:"SERVER_PORT"`
	AllowRemoteActions bool   `mapstructure:"VOICEBANK_ALLOW_REMOTE_ACTIONS"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (config Config, err error) {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("VOICEBANK_ALLOW_REMOTE_ACTIONS", false)
	viper.AutomaticEnv()

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("VOICEBANK_ALLOW_REMOTE_ACTIONS")

	err = viper.Unmarshal(&config)
	return
}
