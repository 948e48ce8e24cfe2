package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photosift/organizer"
	"photosift/utils"
)

func newQuarantineCommand(ctx *commandContext) *cobra.Command {
	flags := &scanFlags{}
	var review string

	cmd := &cobra.Command{
		Use:   "quarantine [folder...]",
		Short: "Move only duplicates to a review folder, recording where each came from",
		Long: `Quarantine scans the given folders and moves every duplicate into the
review folder. Kept group members and unique files stay exactly where they
are. Each move is recorded in a ledger inside the review folder, so
"review revert" can restore any file to its original location later.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runScan(ctx, flags, args)
			if err != nil {
				return err
			}
			if review == "" {
				review = ctx.cfg.ReviewDir
			}
			if review == "" {
				return fmt.Errorf("--review is required (or review_dir in the config file)")
			}

			bar := newProgressBar(res.DuplicateCount(), "Quarantining")
			out := organizer.New().MoveDuplicatesToReview(res, review,
				func(current, _ int, name string) { _ = bar.Set(current) })
			_ = bar.Finish()

			cmd.Printf("Moved %d duplicates (%s) into %s\n",
				out.DuplicatesMoved, utils.FormatSize(res.RecoverableBytes()), review)
			for _, e := range out.Errors {
				cmd.Printf("  %s\n", e)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&review, "review", "", "Review folder for duplicates")
	return cmd
}
