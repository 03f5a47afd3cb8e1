package main

import (
	"github.com/spf13/cobra"

	"github.com/alejandrosb8/Smart-Desktop/internal/engine"
	"github.com/alejandrosb8/Smart-Desktop/internal/organizer"
)

func cleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [dir]",
		Short: "Remove empty category folders and the movement log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := sliceSetting(cmd, "categories", "organizer.categories")

			org := organizer.New(engine.New(nil, nil), nil)

			report, err := org.Clean(cmd.Context(), targetDir(args), categories)
			if err != nil {
				return err
			}

			printCleanReport(report)
			return nil
		},
	}

	cmd.Flags().StringSlice("categories", nil,
		"category labels whose empty folders may be removed")
	return cmd
}
