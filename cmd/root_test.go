package cmd

import (
	"github.com/spf13/cobra"
	"s3fetch/config"
	"testing"
)

func TestCommandConfigBucketOverride(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()

	cfg = &config.Config{
		BucketName:  "configured-bucket",
		Region:      "us-east-1",
		DownloadDir: "downloads",
	}

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("bucket", "b", "", "bucket name")

	resolved := commandConfig(cmd)
	if resolved.BucketName != "configured-bucket" {
		t.Errorf("BucketName = %s, want the configured bucket when the flag is unset", resolved.BucketName)
	}

	if err := cmd.Flags().Set("bucket", "other-bucket"); err != nil {
		t.Fatalf("Failed to set flag: %v", err)
	}

	resolved = commandConfig(cmd)
	if resolved.BucketName != "other-bucket" {
		t.Errorf("BucketName = %s, want the flag override", resolved.BucketName)
	}

	if resolved.Region != "us-east-1" || resolved.DownloadDir != "downloads" {
		t.Errorf("override dropped unrelated fields: %+v", resolved)
	}

	if cfg.BucketName != "configured-bucket" {
		t.Errorf("cfg.BucketName = %s, the loaded configuration must stay untouched", cfg.BucketName)
	}
}
