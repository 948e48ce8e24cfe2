package main

import (
	"time"

	"github.com/spf13/cobra"

	"photosift/logger"
	"photosift/media"
	"photosift/report"
	"photosift/utils"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	flags := &scanFlags{}
	var reportFile string

	cmd := &cobra.Command{
		Use:   "scan [folder...]",
		Short: "Find duplicate photos and videos without touching any files",
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()
			res, err := runScan(ctx, flags, args)
			if err != nil {
				return err
			}
			printSummary(cmd, res)

			if reportFile == "" {
				reportFile = ctx.cfg.ReportFile
			}
			if reportFile != "" {
				if err := report.WriteResult(reportFile, res, started); err != nil {
					return err
				}
				logger.Infof("Report written to %s", reportFile)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&reportFile, "report", "", "Write a JSON report to this file")
	return cmd
}

func printSummary(cmd *cobra.Command, res *media.ScanResult) {
	cmd.Printf("Scanned %d files (%s)\n", res.TotalFiles, utils.FormatSize(res.TotalBytes))
	cmd.Printf("Duplicate groups: %d\n", len(res.Groups))
	cmd.Printf("Duplicates: %d (%s recoverable)\n", res.DuplicateCount(), utils.FormatSize(res.RecoverableBytes()))
	cmd.Printf("Unique files: %d\n", len(res.UniqueItems))

	for _, g := range res.Groups {
		cmd.Printf("\n  keep   %s\n", g.KeepPath)
		for _, item := range g.ToDelete() {
			cmd.Printf("  dupe   %s (%s)\n", item.Path, utils.FormatSize(item.Size))
		}
	}
	if len(res.Errors) > 0 {
		cmd.Printf("\n%d errors:\n", len(res.Errors))
		for _, e := range res.Errors {
			cmd.Printf("  %s\n", e)
		}
	}
}
