package main

import (
	"strings"

	"github.com/spf13/cobra"

	"photosift/logger"
	"photosift/update"
	"photosift/version"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "photosift",
		Short:         "Find, quarantine, and reorganize duplicate photos and videos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (JSON)")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newScanCommand(ctx))
	rootCmd.AddCommand(newOrganizeCommand(ctx))
	rootCmd.AddCommand(newQuarantineCommand(ctx))
	rootCmd.AddCommand(newReviewCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for updates",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("photosift %s\n", version.Version)
			if rel, newer, err := update.CheckForUpdate(version.Version); err == nil && newer {
				if strings.Contains(strings.ToLower(rel.Notes), "security") {
					logger.Warnf("Update available: %s -> %s (security fixes included)", version.Version, rel.Version)
				} else {
					logger.Infof("Update available: %s -> %s", version.Version, rel.Version)
				}
				if rel.DownloadURL != "" {
					cmd.Printf("Download: %s\n", rel.DownloadURL)
				}
			}
		},
	}
}
