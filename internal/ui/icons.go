package ui

import (
	"os"
	"path/filepath"
	"strings"

	"lspretty/internal/browser"
)

// nerdFont mirrors the persisted preference; set once at startup from
// Options. The env var still wins as a kill switch.
var nerdFont = true

// SetNerdFont applies the stored preference for icon rendering.
func SetNerdFont(on bool) { nerdFont = on }

// nfEnabled returns true when Nerd Font icons should be rendered.
// NERDFONT=0 disables them regardless of the preference, to avoid tofu on
// systems without a Nerd Font installed.
func nfEnabled() bool {
	return nerdFont && os.Getenv("NERDFONT") != "0"
}

func nf(icon, fallback string) string {
	if nfEnabled() {
		return icon
	}
	return fallback
}

// extIcons maps lowercase extensions to Nerd Font glyphs.
var extIcons = map[string]string{
	"go":   "",
	"rs":   "",
	"py":   "",
	"js":   "",
	"ts":   "",
	"html": "",
	"css":  "",
	"json": "",
	"yaml": "",
	"yml":  "",
	"toml": "",
	"md":   "",
	"txt":  "",
	"sh":   "",
	"bash": "",
	"zsh":  "",
	"c":    "",
	"cpp":  "",
	"h":    "",
	"java": "",
	"rb":   "",
	"php":  "",
	"lua":  "",
	"sql":  "",
	"png":  "",
	"jpg":  "",
	"jpeg": "",
	"gif":  "",
	"mp3":  "",
	"wav":  "",
	"mp4":  "",
	"mkv":  "",
	"zip":  "",
	"tar":  "",
	"gz":   "",
}

// IconFor picks the listing glyph for an entry.
func IconFor(e browser.Entry) string {
	if e.IsDir {
		return nf("", "d")
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name), "."))
	if ic, ok := extIcons[ext]; ok {
		return nf(ic, "-")
	}
	return nf("", "-")
}

// Status bar icons
func IconFolder() string   { return nf("", "dir") }
func IconTerminal() string { return nf("", "term") }
func IconGit() string      { return nf("", "git") }  // nf-dev-git
func IconBranch() string   { return nf("", "br") }   // nf-oct-git_branch
func IconDirty() string    { return nf("", "*") }    // fa-exclamation-circle
func IconTabs() string     { return nf("", "tabs") } // fa-files-o
