package config

import "flowdeck/utils"

type Config struct {
	Server ServerConfig
	Log    LogConfig
	CORS   CORSConfig
	Static StaticConfig
}

type ServerConfig struct {
	Port string
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	AllowOrigin string
}

// StaticConfig points at the built frontend bundle. An empty Dir disables
// static serving entirely.
type StaticConfig struct {
	Dir string
}

// Load reads configuration from the environment, with defaults suitable
// for local development.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: utils.GetEnvAsString("PORT", "5000"),
		},
		Log: LogConfig{
			Level: utils.GetEnvAsString("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowOrigin: utils.GetEnvAsString("CORS_ALLOW_ORIGIN", "*"),
		},
		Static: StaticConfig{
			Dir: utils.GetEnvAsString("STATIC_DIR", ""),
		},
	}
}
