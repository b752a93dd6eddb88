package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"lspretty/internal/browser"
	"lspretty/internal/prefs"
)

func init() {
	lsCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "show hidden files")
	lsCmd.Flags().BoolVarP(&flagHuman, "human-readable", "H", false, "human readable file sizes")
	rootCmd.AddCommand(lsCmd)
}

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "Print the listing without the TUI",
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
		return printListing(cmd.OutOrStdout(), dir, p)
	},
}

// printListing writes the plain table the TUI renders, one row per entry.
func printListing(w io.Writer, dir string, p prefs.Prefs) error {
	entries, err := browser.Load(dir, p.ShowHidden)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Directory: %s\n", dir)
	fmt.Fprintln(w, strings.Repeat("─", 80))
	for _, e := range entries {
		name := runewidth.FillRight(runewidth.Truncate(e.Name, 30, "…"), 30)
		fmt.Fprintf(w, "%s %10s %s %s\n",
			name,
			browser.FormatSize(e.Size, p.HumanSizes),
			e.Permissions(),
			browser.FormatTime(e.ModTime),
		)
	}
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "Total entries: %d\n", len(entries))
	return nil
}
