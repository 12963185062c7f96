package config

import (
	"github.com/joho/godotenv"
	"log/slog"
	"os"
)

type Config struct {
	ApiURL      string
	AccessKey   string
	SecretKey   string
	BucketName  string
	Region      string
	DownloadDir string
	LogFile     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		ApiURL:      getEnv("API_URL", ""),
		AccessKey:   getEnv("ACCESS_KEY", ""),
		SecretKey:   getEnv("SECRET_KEY", ""),
		BucketName:  getEnv("BUCKET_NAME", ""),
		Region:      getEnv("REGION", "us-east-1"),
		DownloadDir: getEnv("DOWNLOAD_DIR", "downloads"),
		LogFile:     getEnv("LOG_FILE", "s3fetch.log"),
	}

	return config, nil
}

// HasStaticCredentials reports whether an explicit key pair was supplied.
// When false, credential resolution is left to the SDK's default chain.
func (c *Config) HasStaticCredentials() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
