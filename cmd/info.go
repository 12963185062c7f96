package cmd

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"s3fetch/pkg/utils"
	"time"
)

var infoCmd = &cobra.Command{
	Use:   "info [key]",
	Short: "Show metadata for a single object",
	Long: `Show size, content type, modification time, ETag and user metadata
for a single object without downloading it.`,
	Example: `  # Inspect an object
  s3fetch info reports/2024/summary.pdf

  # Inspect an object as JSON
  s3fetch info reports/2024/summary.pdf --json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runInfo(cmd, args)
	},
}

func runInfo(cmd *cobra.Command, args []string) {
	key := args[0]

	conf := commandConfig(cmd)
	if !requireBucket(cmd, conf) {
		return
	}

	client := newClient(cmd, conf)

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	info, err := client.StatObject(ctx, key)
	if err != nil {
		logger.Error("failed to stat object", "bucket", conf.BucketName, "key", key, "error", err)
		utils.PrintError(err, "info")
		return
	}

	if asJSON(cmd) {
		if err := utils.PrintJSON(info); err != nil {
			utils.PrintError(err, "info")
		}
		return
	}

	fmt.Printf("Key: %s\n", info.Key)
	fmt.Printf("Size: %s (%d bytes)\n", info.SizeHuman, info.Size)
	fmt.Printf("Content Type: %s\n", info.ContentType)
	fmt.Printf("Last Modified: %s\n", utils.FormatTime(info.LastModified))
	fmt.Printf("ETag: %s\n", info.ETag)
	for name, value := range info.Metadata {
		fmt.Printf("Metadata %s: %s\n", name, value)
	}
}

func init() {
	infoCmd.Flags().Int("timeout", 300, "Timeout in seconds for the operation")
}
