package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwinters/braveport/internal/adapter/driven/archive"
	"github.com/cwinters/braveport/internal/adapter/driven/profile"
	"github.com/cwinters/braveport/internal/application"
	"github.com/cwinters/braveport/internal/config"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

func newImportCommand() *cobra.Command {
	var (
		input       string
		noPasswords bool
		noHistory   bool
		noBookmarks bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a previously exported archive into the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var logins driven.LoginStore
			if !noPasswords {
				logins, err = newLoginStore(cfg)
				if err != nil {
					return err
				}
			}

			svc := application.NewImportService(
				cfg,
				logins,
				profile.NewBookmarkRepo(cfg.BookmarksPath(), slog.Default()),
				profile.NewFiles(cfg.ProfileDir, slog.Default()),
				archive.NewZipArchiver(),
				slog.Default(),
			)

			summary, err := svc.Run(cmd.Context(), application.ImportOptions{
				Input:     input,
				Passwords: !noPasswords,
				History:   !noHistory,
				Bookmarks: !noBookmarks,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Imported: %d passwords, %d bookmarks, history replaced: %t\n",
				summary.Passwords, summary.Bookmarks, summary.HistoryReplaced)
			fmt.Fprintln(cmd.OutOrStdout(),
				"Restart the browser to pick up the imported data.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input archive path (required)")
	cmd.Flags().BoolVar(&noPasswords, "no-passwords", false, "Skip importing passwords")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip importing history")
	cmd.Flags().BoolVar(&noBookmarks, "no-bookmarks", false, "Skip importing bookmarks")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
