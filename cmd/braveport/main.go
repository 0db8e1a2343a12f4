// braveport migrates Brave browser profile data (saved credentials, history,
// bookmarks) between machines and operating systems.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}
