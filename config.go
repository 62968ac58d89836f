package main

import "github.com/spf13/viper"

// Default grid dimensions when the request does not specify any.
const (
	defaultWidth  = 15
	defaultHeight = 12
)

// Config holds the server settings, read from the environment.
type Config struct {
	Port       string
	GCPProject string
	GCPRegion  string
	MaxGridDim int
	MaxWords   int
	Debug      bool
}

// LoadConfig reads the configuration from environment variables, with
// sensible defaults for everything but the GCP project.
func LoadConfig() Config {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("max_grid_dim", 50)
	v.SetDefault("max_words", 200)
	v.SetDefault("debug", false)
	v.AutomaticEnv()

	return Config{
		Port:       v.GetString("port"),
		GCPProject: v.GetString("gcp_project_id"),
		GCPRegion:  v.GetString("gcp_region"),
		MaxGridDim: v.GetInt("max_grid_dim"),
		MaxWords:   v.GetInt("max_words"),
		Debug:      v.GetBool("debug"),
	}
}
