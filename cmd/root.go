package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"log/slog"
	"os"
	"s3fetch/config"
	"s3fetch/internal/s3client"
	"s3fetch/pkg/utils"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "s3fetch",
	Short: "S3 download tool for listing and fetching bucket objects",
	Long: `s3fetch is a command-line tool for listing and downloading objects
from S3-compatible storage. It can fetch a single object or a whole key
prefix with extension filtering, and writes a report after batch runs.
Configuration is loaded from .env file or environment variables`,
}

func Execute(config *config.Config, log *slog.Logger) error {
	cfg = config
	logger = log
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(listBucketsCmd)
	rootCmd.AddCommand(listObjectsCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(infoCmd)

	rootCmd.PersistentFlags().StringP("bucket", "b", "", "Override bucket name from config")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")
}

// commandConfig applies the --bucket override onto a copy of the loaded config.
func commandConfig(cmd *cobra.Command) *config.Config {
	resolved := *cfg
	if bucket, _ := cmd.Flags().GetString("bucket"); bucket != "" {
		resolved.BucketName = bucket
	}
	return &resolved
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Flags().GetBool("quiet")
	return quiet
}

func asJSON(cmd *cobra.Command) bool {
	jsonOut, _ := cmd.Flags().GetBool("json")
	return jsonOut
}

func newClient(cmd *cobra.Command, conf *config.Config) *s3client.Client {
	client, err := s3client.New(conf, logger, isQuiet(cmd))
	if err != nil {
		logger.Error("failed to initialize storage client", "error", err)
		utils.PrintError(err, cmd.Name())
		os.Exit(1)
	}
	return client
}

func requireBucket(cmd *cobra.Command, conf *config.Config) bool {
	if conf.BucketName == "" {
		err := fmt.Errorf("bucket name is required; set BUCKET_NAME or pass --bucket")
		logger.Error("missing bucket name", "command", cmd.Name())
		utils.PrintError(err, cmd.Name())
		return false
	}
	return true
}
