package cmd

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"s3fetch/pkg/utils"
	"time"
)

var listObjectsCmd = &cobra.Command{
	Use:   "list-objects",
	Short: "List objects in the bucket",
	Long: `List objects in the S3 bucket, optionally under a key prefix.

Listing is paginated transparently and stops once the maximum number of
keys has been collected. The bucket name is taken from the configuration
unless overridden with --bucket.`,
	Example: `  # List the first 1000 objects
  s3fetch list-objects

  # List objects under a prefix
  s3fetch list-objects --prefix images/2024/

  # List at most 50 objects as JSON
  s3fetch list-objects --max-keys 50 --json`,
	Run: func(cmd *cobra.Command, args []string) {
		runListObjects(cmd)
	},
}

func runListObjects(cmd *cobra.Command) {
	prefix, _ := cmd.Flags().GetString("prefix")
	maxKeys, _ := cmd.Flags().GetInt("max-keys")

	conf := commandConfig(cmd)
	if !requireBucket(cmd, conf) {
		return
	}

	client := newClient(cmd, conf)

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	records, err := client.ListObjects(ctx, prefix, maxKeys)
	if err != nil {
		logger.Error("failed to list objects", "bucket", conf.BucketName, "prefix", prefix, "error", err)
		utils.PrintError(err, "list-objects")
		return
	}

	if asJSON(cmd) {
		if err := utils.PrintJSON(records); err != nil {
			utils.PrintError(err, "list-objects")
		}
		return
	}

	if len(records) == 0 {
		fmt.Printf("No objects found in bucket %s with prefix %q\n", conf.BucketName, prefix)
		return
	}

	fmt.Printf("Objects in bucket %s (%d):\n", conf.BucketName, len(records))
	for _, record := range records {
		fmt.Printf("  - %s (%s, modified: %s)\n",
			record.Key, utils.FormatBytes(record.Size), utils.FormatTime(record.LastModified))
	}
}

func init() {
	listObjectsCmd.Flags().StringP("prefix", "p", "", "Only list keys starting with this prefix")
	listObjectsCmd.Flags().Int("max-keys", 1000, "Maximum number of keys to return (0 means no limit)")
	listObjectsCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
