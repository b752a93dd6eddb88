package cli

import (
	"github.com/spf13/cobra"

	"lspretty/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Interactive settings (writes prefs.json)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Run()
	},
}
