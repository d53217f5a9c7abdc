package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/esimov/koch/store"
)

func newCleanCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete all generated images, best effort",
		RunE: func(_ *cobra.Command, _ []string) error {
			st, err := store.New(outputDir, store.WithLogger(slog.Default()))
			if err != nil {
				return err
			}
			removed := st.Clear()
			fmt.Printf("Removed %d image(s) from %s\n", removed, outputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "static/images", "directory holding generated images")
	return cmd
}
