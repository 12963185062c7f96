package cmd

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"s3fetch/pkg/utils"
	"time"
)

var listBucketsCmd = &cobra.Command{
	Use:   "list-buckets",
	Short: "List all accessible buckets",
	Long: `List every bucket the configured credentials can access,
with its creation date. No bucket name is required for this command.`,
	Example: `  # List buckets
  s3fetch list-buckets

  # List buckets as JSON
  s3fetch list-buckets --json`,
	Run: func(cmd *cobra.Command, args []string) {
		runListBuckets(cmd)
	},
}

func runListBuckets(cmd *cobra.Command) {
	conf := commandConfig(cmd)
	client := newClient(cmd, conf)

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	buckets, err := client.ListBuckets(ctx)
	if err != nil {
		logger.Error("failed to list buckets", "error", err)
		utils.PrintError(err, "list-buckets")
		return
	}

	if asJSON(cmd) {
		if err := utils.PrintJSON(buckets); err != nil {
			utils.PrintError(err, "list-buckets")
		}
		return
	}

	fmt.Printf("Available buckets (%d):\n", len(buckets))
	for _, bucket := range buckets {
		fmt.Printf("  - %s (created: %s)\n", bucket.Name, utils.FormatTime(bucket.CreationDate))
	}
}

func init() {
	listBucketsCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
