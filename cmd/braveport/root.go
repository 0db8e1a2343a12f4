package main

import (
	"github.com/spf13/cobra"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "none"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "braveport",
		Short:         "Migrate Brave browser profile data between machines",
		Long: "braveport exports saved credentials, browsing history and bookmarks\n" +
			"from a Brave profile into a portable archive, and imports such an\n" +
			"archive into the local profile, re-encrypting credentials for this\n" +
			"machine's protection scheme.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newExportCommand())
	root.AddCommand(newImportCommand())
	root.AddCommand(newPathsCommand())
	root.AddCommand(newVersionCommand())

	return root
}
