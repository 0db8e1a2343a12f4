package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwinters/braveport/internal/config"
)

func newPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the resolved profile file locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Profile directory: %s\n", cfg.ProfileDir)
			fmt.Fprintf(out, "Local State:       %s\n", cfg.LocalStatePath)
			fmt.Fprintf(out, "Login Data:        %s\n", cfg.LoginDataPath())
			fmt.Fprintf(out, "History:           %s\n", cfg.HistoryPath())
			fmt.Fprintf(out, "Bookmarks:         %s\n", cfg.BookmarksPath())

			if _, err := os.Stat(cfg.ProfileDir); err != nil {
				fmt.Fprintln(out, "Warning: profile directory not found; is Brave installed?")
			}
			return nil
		},
	}
}
