package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"photosift/organizer"
	"photosift/utils"
)

func newReviewCommand(ctx *commandContext) *cobra.Command {
	var review string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Inspect and act on quarantined files",
	}
	cmd.PersistentFlags().StringVar(&review, "review", "", "Review folder")

	resolveReview := func() (string, error) {
		if review != "" {
			return review, nil
		}
		if ctx.cfg.ReviewDir != "" {
			return ctx.cfg.ReviewDir, nil
		}
		return "", fmt.Errorf("--review is required (or review_dir in the config file)")
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List quarantined files and their original locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveReview()
			if err != nil {
				return err
			}
			entries, err := organizer.New().ListReviewContents(dir)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				cmd.Println("Review folder is empty")
				return nil
			}
			for _, e := range entries {
				cmd.Printf("%-40s %10s  %s\n", e.Name, utils.FormatSize(e.Size), e.OriginalPath)
			}
			return nil
		},
	}

	revertCmd := &cobra.Command{
		Use:   "revert <file>...",
		Short: "Move quarantined files back to their original locations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveReview()
			if err != nil {
				return err
			}
			r := organizer.New()
			for _, name := range args {
				restored, err := r.Revert(dir, name)
				if err != nil {
					return err
				}
				cmd.Printf("Restored %s to %s\n", name, restored)
			}
			return nil
		},
	}

	var useTrash bool
	rmCmd := &cobra.Command{
		Use:   "rm <file>...",
		Short: "Delete quarantined files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveReview()
			if err != nil {
				return err
			}
			r := organizer.New()
			for _, name := range args {
				if err := r.DeleteFromReview(dir, name, useTrash); err != nil {
					return err
				}
				cmd.Printf("Deleted %s\n", name)
			}
			return nil
		},
	}
	rmCmd.Flags().BoolVar(&useTrash, "trash", false, "Move to the system trash instead of deleting permanently")

	cmd.AddCommand(listCmd, revertCmd, rmCmd)
	return cmd
}
