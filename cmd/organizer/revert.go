package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alejandrosb8/Smart-Desktop/internal/common"
	"github.com/alejandrosb8/Smart-Desktop/internal/engine"
	"github.com/alejandrosb8/Smart-Desktop/internal/organizer"
)

func revertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert [dir]",
		Short: "Undo the most recent organize run using the movement log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Revert never talks to the AI; no classifier needed.
			org := organizer.New(engine.New(nil, nil), nil)

			report, err := org.Revert(cmd.Context(), targetDir(args))
			if errors.Is(err, common.ErrNoMovementLog) {
				fmt.Println("No movement log found. Nothing to revert.")
				return nil
			}
			if err != nil {
				return err
			}

			printRevertReport(report)
			return nil
		},
	}
}
