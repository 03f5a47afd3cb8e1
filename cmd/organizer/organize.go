package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/alejandrosb8/Smart-Desktop/internal/model"
	"github.com/alejandrosb8/Smart-Desktop/internal/organizer"
)

func organizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [dir]",
		Short: "Classify files, review the plan, and move them into category folders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			force, _ := cmd.Flags().GetBool("force")

			org, closer, err := buildOrganizer()
			if err != nil {
				return err
			}
			defer func() { _ = closer() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
			defer cancel()

			plan, err := org.Preview(ctx, targetDir(args), runConfig(cmd))
			if err != nil {
				return err
			}

			printPlan(plan)

			if plan.Count(model.ActionMove) == 0 {
				fmt.Println("Nothing to move.")
				return nil
			}

			if !yes && !confirm("Apply these moves?") {
				fmt.Println("Aborted.")
				return nil
			}

			bar := newApplyBar(len(plan.Items))
			report, err := org.Apply(ctx, plan, organizer.ApplyOptions{
				Force: force,
				Progress: func(done, _ int) {
					if setErr := bar.Set(done); setErr != nil {
						slog.Warn("Failed to update progress bar", "error", setErr)
					}
				},
			})
			if err != nil {
				return err
			}

			printApplyReport(report)
			return nil
		},
	}

	addRunFlags(cmd)
	cmd.Flags().Bool("yes", false, "apply without asking for confirmation")
	cmd.Flags().Bool("force", false, "discard an unconsumed movement log from a previous run")
	return cmd
}

func newApplyBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Applying plan..."),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
