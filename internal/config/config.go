package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Configuration provides type-safe access to application settings
type Configuration struct {
	viper *viper.Viper
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", "./gnembren-projects.json")
	v.SetDefault("autosave.debounce_ms", 1000)
	v.SetDefault("editor.split_epsilon", 0.1)
	v.SetDefault("transcriber.command", "")
	v.SetDefault("transcriber.model_path", "")
	v.SetDefault("ffprobe.path", "ffprobe")
}

// NewConfiguration creates a new Configuration instance with default settings
func NewConfiguration() *Configuration {
	v := viper.New()
	setDefaults(v)
	return &Configuration{viper: v}
}

// NewConfigurationFromFile creates a Configuration instance from a config file
func NewConfigurationFromFile(configFile string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	return &Configuration{viper: v}, nil
}

// NewConfigurationFromEnv creates a Configuration instance that reads from environment variables
func NewConfigurationFromEnv() *Configuration {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("GNEMBREN")
	v.AutomaticEnv()

	v.BindEnv("store.path", "GNEMBREN_STORE_PATH")
	v.BindEnv("autosave.debounce_ms", "GNEMBREN_AUTOSAVE_DEBOUNCE_MS")
	v.BindEnv("editor.split_epsilon", "GNEMBREN_SPLIT_EPSILON")
	v.BindEnv("transcriber.command", "GNEMBREN_TRANSCRIBER_COMMAND")
	v.BindEnv("transcriber.model_path", "GNEMBREN_TRANSCRIBER_MODEL_PATH")
	v.BindEnv("ffprobe.path", "GNEMBREN_FFPROBE_PATH")

	return &Configuration{viper: v}
}

// GetStorePath returns the project store file path
func (c *Configuration) GetStorePath() string {
	return c.viper.GetString("store.path")
}

// GetAutosaveDebounce returns the autosave quiescence window
func (c *Configuration) GetAutosaveDebounce() time.Duration {
	return time.Duration(c.viper.GetInt("autosave.debounce_ms")) * time.Millisecond
}

// GetSplitEpsilon returns the minimum distance from a segment edge at which
// splits are allowed, in seconds
func (c *Configuration) GetSplitEpsilon() float64 {
	return c.viper.GetFloat64("editor.split_epsilon")
}

// GetTranscriberCommand returns the external caption generator command
func (c *Configuration) GetTranscriberCommand() string {
	return c.viper.GetString("transcriber.command")
}

// GetTranscriberModelPath returns the model path passed to the caption generator
func (c *Configuration) GetTranscriberModelPath() string {
	return c.viper.GetString("transcriber.model_path")
}

// GetFFprobePath returns the ffprobe binary path used for media probing
func (c *Configuration) GetFFprobePath() string {
	return c.viper.GetString("ffprobe.path")
}
