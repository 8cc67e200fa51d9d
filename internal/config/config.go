package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	CMSDir    string
	OutputDir string
	DBPath    string

	AssetBase      string
	ContentURL     string
	FetchTimeoutMs int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		CMSDir:    getEnv("CMS_DIR", filepath.Join(cwd, "cms")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "public", "cms")),
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),

		AssetBase:      getEnv("ASSET_BASE", "/cms/"),
		ContentURL:     getEnv("CONTENT_URL", ""),
		FetchTimeoutMs: getEnvInt("FETCH_TIMEOUT_MS", 10000),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
