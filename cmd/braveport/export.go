package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwinters/braveport/internal/adapter/driven/archive"
	"github.com/cwinters/braveport/internal/adapter/driven/profile"
	"github.com/cwinters/braveport/internal/adapter/driven/sqlite"
	"github.com/cwinters/braveport/internal/application"
	"github.com/cwinters/braveport/internal/config"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

func newExportCommand() *cobra.Command {
	var (
		output      string
		noPasswords bool
		noHistory   bool
		noBookmarks bool
		historyDays int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export profile data into a portable archive",
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

			svc := application.NewExportService(
				cfg,
				logins,
				sqlite.NewHistoryRepo(cfg.HistoryPath()),
				profile.NewBookmarkRepo(cfg.BookmarksPath(), slog.Default()),
				archive.NewZipArchiver(),
				slog.Default(),
			)

			summary, err := svc.Run(cmd.Context(), application.ExportOptions{
				Output:      output,
				Passwords:   !noPasswords,
				History:     !noHistory,
				Bookmarks:   !noBookmarks,
				HistoryDays: historyDays,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Exported to %s: %d/%d passwords, %d history entries, %d bookmarks\n",
				summary.ArchivePath, summary.Passwords, summary.PasswordsAttempted,
				summary.HistoryEntries, summary.Bookmarks)
			fmt.Fprintln(cmd.OutOrStdout(),
				"The archive contains plaintext secrets. Keep it secure and delete it after transferring.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output archive path (required)")
	cmd.Flags().BoolVar(&noPasswords, "no-passwords", false, "Skip exporting passwords")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip exporting history")
	cmd.Flags().BoolVar(&noBookmarks, "no-bookmarks", false, "Skip exporting bookmarks")
	cmd.Flags().IntVar(&historyDays, "history-days", 0, "Only export history from the last N days")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
