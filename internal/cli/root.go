package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lspretty/internal/app"
	"lspretty/internal/prefs"
)

var (
	flagAll   bool
	flagHuman bool
	flagList  bool
)

var rootCmd = &cobra.Command{
	Use:   "lspretty [path]",
	Short: "lspretty – a beautiful TUI file browser",
	Long:  "lspretty browses directories in a TUI with tabbed in-place editing and an embedded shell.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(args)
		if err != nil {
			return err
		}
		p, _ := prefs.Load()
		if cmd.Flags().Changed("all") {
			p.ShowHidden = flagAll
		}
		if cmd.Flags().Changed("human-readable") {
			p.HumanSizes = flagHuman
		}
		if flagList {
			return printListing(cmd.OutOrStdout(), dir, p)
		}
		return app.Start(app.Options{
			Path:       dir,
			ShowHidden: p.ShowHidden,
			HumanSizes: p.HumanSizes,
			NerdFont:   p.NerdFont,
		})
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "show hidden files")
	rootCmd.Flags().BoolVarP(&flagHuman, "human-readable", "H", false, "human readable file sizes")
	rootCmd.Flags().BoolVarP(&flagList, "list", "l", false, "simple list mode (no TUI)")
}

// resolveDir validates the optional path argument, defaulting to the
// current directory.
func resolveDir(args []string) (string, error) {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path %q is not a directory", abs)
	}
	return abs, nil
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
