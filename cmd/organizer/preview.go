package main

import (
	"context"

	"github.com/spf13/cobra"
)

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [dir]",
		Short: "Classify files and show the move plan without touching anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			return nil
		},
	}

	addRunFlags(cmd)
	return cmd
}
