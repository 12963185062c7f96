package cmd

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"s3fetch/pkg/utils"
	"syscall"
	"time"
)

var getCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Download a single object",
	Long: `Download a single object from the S3 bucket to a local file.

The destination defaults to the configured download directory plus the
object's base name. Parent directories are created as needed and progress
is printed to stderr while the transfer runs.`,
	Example: `  # Download into the configured download directory
  s3fetch get reports/2024/summary.pdf

  # Download to an explicit path
  s3fetch get reports/2024/summary.pdf --output /tmp/summary.pdf

  # Download from a different bucket
  s3fetch get backups/db.dump --bucket my-other-bucket

  # Download without progress output
  s3fetch get logs/app.log --quiet`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runGet(cmd, args)
	},
}

func runGet(cmd *cobra.Command, args []string) {
	key := args[0]
	output, _ := cmd.Flags().GetString("output")

	conf := commandConfig(cmd)
	if !requireBucket(cmd, conf) {
		return
	}

	if output == "" {
		output = filepath.Join(conf.DownloadDir, path.Base(key))
	}

	client := newClient(cmd, conf)

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	outcome, err := client.DownloadFile(ctx, key, output)

	if asJSON(cmd) {
		if err := utils.PrintJSON(outcome); err != nil {
			utils.PrintError(err, "get")
		}
		return
	}

	if err != nil {
		fmt.Printf("✗ download failed: %s\n", key)
		return
	}

	fmt.Printf("✓ downloaded %s -> %s (%s)\n", key, outcome.LocalPath, utils.FormatBytes(outcome.Size))
}

func init() {
	getCmd.Flags().StringP("output", "o", "", "Local destination path (default: download dir plus object base name)")
	getCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")
}
