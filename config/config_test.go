package config

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	result := getEnv("TEST_VAR", "default_value")
	if result != "test_value" {
		t.Errorf("getEnv() = %s, want %s", result, "test_value")
	}

	result = getEnv("NON_EXISTENT_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}

	os.Setenv("EMPTY_VAR", "")
	defer os.Unsetenv("EMPTY_VAR")

	result = getEnv("EMPTY_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}
}

func TestLoad(t *testing.T) {
	keys := []string{"API_URL", "ACCESS_KEY", "SECRET_KEY", "BUCKET_NAME", "REGION", "DOWNLOAD_DIR", "LOG_FILE"}

	originalVars := make(map[string]string, len(keys))
	for _, key := range keys {
		originalVars[key] = os.Getenv(key)
	}

	defer func() {
		for key, value := range originalVars {
			if value == "" {
				os.Unsetenv(key)
			} else {
				os.Setenv(key, value)
			}
		}
	}()

	testVars := map[string]string{
		"API_URL":      "https://test-api.example.com",
		"ACCESS_KEY":   "test-access-key",
		"SECRET_KEY":   "test-secret-key",
		"BUCKET_NAME":  "test-bucket",
		"REGION":       "test-region",
		"DOWNLOAD_DIR": "test-downloads",
		"LOG_FILE":     "test.log",
	}

	for key, value := range testVars {
		os.Setenv(key, value)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.ApiURL != testVars["API_URL"] {
		t.Errorf("config.ApiURL = %s, want %s", config.ApiURL, testVars["API_URL"])
	}

	if config.AccessKey != testVars["ACCESS_KEY"] {
		t.Errorf("config.AccessKey = %s, want %s", config.AccessKey, testVars["ACCESS_KEY"])
	}

	if config.SecretKey != testVars["SECRET_KEY"] {
		t.Errorf("config.SecretKey = %s, want %s", config.SecretKey, testVars["SECRET_KEY"])
	}

	if config.BucketName != testVars["BUCKET_NAME"] {
		t.Errorf("config.BucketName = %s, want %s", config.BucketName, testVars["BUCKET_NAME"])
	}

	if config.Region != testVars["REGION"] {
		t.Errorf("config.Region = %s, want %s", config.Region, testVars["REGION"])
	}

	if config.DownloadDir != testVars["DOWNLOAD_DIR"] {
		t.Errorf("config.DownloadDir = %s, want %s", config.DownloadDir, testVars["DOWNLOAD_DIR"])
	}

	if config.LogFile != testVars["LOG_FILE"] {
		t.Errorf("config.LogFile = %s, want %s", config.LogFile, testVars["LOG_FILE"])
	}

	for key := range testVars {
		os.Unsetenv(key)
	}

	config, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.ApiURL != "" {
		t.Errorf("config.ApiURL = %s, want %s", config.ApiURL, "")
	}

	if config.AccessKey != "" {
		t.Errorf("config.AccessKey = %s, want %s", config.AccessKey, "")
	}

	if config.SecretKey != "" {
		t.Errorf("config.SecretKey = %s, want %s", config.SecretKey, "")
	}

	if config.BucketName != "" {
		t.Errorf("config.BucketName = %s, want %s", config.BucketName, "")
	}

	if config.Region != "us-east-1" {
		t.Errorf("config.Region = %s, want %s", config.Region, "us-east-1")
	}

	if config.DownloadDir != "downloads" {
		t.Errorf("config.DownloadDir = %s, want %s", config.DownloadDir, "downloads")
	}

	if config.LogFile != "s3fetch.log" {
		t.Errorf("config.LogFile = %s, want %s", config.LogFile, "s3fetch.log")
	}
}

func TestHasStaticCredentials(t *testing.T) {
	tests := []struct {
		name      string
		accessKey string
		secretKey string
		expected  bool
	}{
		{"Both set", "key", "secret", true},
		{"Only access key", "key", "", false},
		{"Only secret key", "", "secret", false},
		{"Neither set", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AccessKey: tt.accessKey, SecretKey: tt.secretKey}
			if got := cfg.HasStaticCredentials(); got != tt.expected {
				t.Errorf("HasStaticCredentials() = %t, want %t", got, tt.expected)
			}
		})
	}
}
