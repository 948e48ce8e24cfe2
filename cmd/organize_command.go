package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photosift/organizer"
	"photosift/utils"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	flags := &scanFlags{}
	var dest, review string
	var byDate, copyFiles bool

	cmd := &cobra.Command{
		Use:   "organize [folder...]",
		Short: "Move duplicates to a review folder and sort unique files into a destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runScan(ctx, flags, args)
			if err != nil {
				return err
			}

			cfg := ctx.cfg
			if dest == "" {
				dest = cfg.Destination
			}
			if review == "" {
				review = cfg.ReviewDir
			}
			if dest == "" || review == "" {
				return fmt.Errorf("both --dest and --review are required (or destination and review_dir in the config file)")
			}
			if cmd.Flags().Changed("by-date") {
				cfg.OrganizeByDate = byDate
			}
			if copyFiles {
				cfg.MoveFiles = false
			}

			total := res.DuplicateCount() + len(res.UniqueItems)
			bar := newProgressBar(total, "Organizing")
			out := organizer.New().Organize(dest, review, res, cfg.OrganizeByDate, cfg.MoveFiles,
				func(current, _ int, name string) { _ = bar.Set(current) })
			_ = bar.Finish()

			cmd.Printf("Organized %d unique files into %s\n", out.Organized, dest)
			cmd.Printf("Moved %d duplicates (%s) into %s\n",
				out.DuplicatesMoved, utils.FormatSize(res.RecoverableBytes()), review)
			for _, e := range out.Errors {
				cmd.Printf("  %s\n", e)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&dest, "dest", "", "Destination folder for unique files")
	cmd.Flags().StringVar(&review, "review", "", "Review folder for duplicates")
	cmd.Flags().BoolVar(&byDate, "by-date", true, "Nest unique files under year/month folders")
	cmd.Flags().BoolVar(&copyFiles, "copy", false, "Copy files instead of moving them")
	return cmd
}
