package cmd

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"s3fetch/internal/report"
	"s3fetch/pkg/utils"
	"syscall"
	"time"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [prefix]",
	Short: "Download all objects under a prefix",
	Long: `Download every object under a key prefix from the S3 bucket.

Objects can be filtered by extension and capped at a maximum count. The
key layout under the prefix is mirrored beneath the download directory.
Directory marker keys (ending with "/") are skipped, and a failed object
never stops the rest of the batch.

When the batch finishes, a report is printed and saved as
download_report.txt inside the download directory. An interrupted run
keeps the files downloaded so far but skips the report.`,
	Example: `  # Download everything in the bucket
  s3fetch fetch

  # Download one folder
  s3fetch fetch images/2024/

  # Only jpg and png files, at most 100 of them
  s3fetch fetch images/ --ext .jpg --ext .png --max-files 100

  # Download into a specific directory
  s3fetch fetch backups/ --dest /mnt/restore

  # Download from a different bucket without progress output
  s3fetch fetch data/ --bucket my-other-bucket --quiet`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runFetch(cmd, args)
	},
}

func runFetch(cmd *cobra.Command, args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	extensions, _ := cmd.Flags().GetStringSlice("ext")
	maxFiles, _ := cmd.Flags().GetInt("max-files")
	dest, _ := cmd.Flags().GetString("dest")

	conf := commandConfig(cmd)
	if dest != "" {
		conf.DownloadDir = dest
	}
	if !requireBucket(cmd, conf) {
		return
	}

	if err := os.MkdirAll(conf.DownloadDir, 0755); err != nil {
		logger.Error("failed to create download directory", "path", conf.DownloadDir, "error", err)
		utils.PrintError(err, "fetch")
		return
	}

	client := newClient(cmd, conf)

	timeout, _ := cmd.Flags().GetInt("timeout")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	stats, err := client.DownloadPrefix(ctx, prefix, extensions, maxFiles)
	if err != nil {
		if stats != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			logger.Warn("download interrupted, report skipped",
				"downloaded", stats.Downloaded, "failed", stats.Failed)
			return
		}
		logger.Error("failed to list objects", "bucket", conf.BucketName, "prefix", prefix, "error", err)
		utils.PrintError(err, "fetch")
		return
	}

	content := report.Generate(stats, conf.DownloadDir, time.Now())

	if asJSON(cmd) {
		if err := utils.PrintJSON(stats); err != nil {
			utils.PrintError(err, "fetch")
			return
		}
	} else {
		fmt.Println(content)
	}

	reportPath, err := report.Save(conf.DownloadDir, content)
	if err != nil {
		logger.Error("failed to save download report", "error", err)
		utils.PrintError(err, "fetch")
		return
	}
	logger.Info("download report saved", "path", reportPath)
}

func init() {
	fetchCmd.Flags().StringSliceP("ext", "e", nil, "Only download keys with these extensions (repeatable)")
	fetchCmd.Flags().IntP("max-files", "m", 0, "Maximum number of files to download (0 means no limit)")
	fetchCmd.Flags().StringP("dest", "d", "", "Download directory (overrides config)")
	fetchCmd.Flags().Int("timeout", 3600, "Timeout in seconds for the operation (default: 1 hour)")

	fetchCmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`)
}
