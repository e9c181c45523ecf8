package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server    ServerConfig
	Artifacts ArtifactsConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port int
}

type ArtifactsConfig struct {
	Dir string
}

type CORSConfig struct {
	AllowedOrigins string
}

// OriginList splits the comma-separated allow-list, dropping empty
// entries. A blank configuration means allow all.
func (c CORSConfig) OriginList() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func LoadConfig() (*Config, error) {
	serverPort, err := getIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Artifacts: ArtifactsConfig{
			Dir: getEnv("MODEL_ARTIFACTS_DIR", "model_artifacts"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("ALLOW_ORIGINS", "*"),
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
