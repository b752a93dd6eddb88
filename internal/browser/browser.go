// Package browser provides the directory listing consumed by the TUI:
// entry metadata, dirs-first sorting, text-file detection, and fuzzy
// filtering over entry names.
package browser

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// Entry is one row of the listing.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	Mode    os.FileMode
	ModTime time.Time
	Hidden  bool
}

// Permissions renders the mode the way ls does (e.g. "drwxr-xr-x").
func (e Entry) Permissions() string { return e.Mode.String() }

// Load reads dir and returns its entries sorted directories-first, then
// case-insensitively by name. A ".." entry is prepended unless dir is the
// filesystem root. Entries whose metadata cannot be read are skipped.
func Load(dir string, showHidden bool) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		info, err := de.Info()
		if err != nil {
			continue
		}
		name := de.Name()
		hidden := strings.HasPrefix(name, ".")
		if hidden && !showHidden {
			continue
		}
		entries = append(entries, Entry{
			Name:    name,
			Path:    filepath.Join(dir, name),
			IsDir:   de.IsDir(),
			Size:    info.Size(),
			Mode:    info.Mode(),
			ModTime: info.ModTime(),
			Hidden:  hidden,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	if parent := filepath.Dir(dir); parent != dir {
		entries = append([]Entry{{
			Name:  "..",
			Path:  parent,
			IsDir: true,
			Mode:  os.ModeDir | 0o777,
		}}, entries...)
	}
	return entries, nil
}

// textExtensions are the file extensions opened as editable text.
var textExtensions = map[string]bool{
	"txt": true, "md": true, "rs": true, "py": true, "js": true,
	"ts": true, "html": true, "css": true, "json": true, "xml": true,
	"yaml": true, "yml": true, "toml": true, "cfg": true, "conf": true,
	"log": true, "sh": true, "bash": true, "zsh": true, "fish": true,
	"c": true, "cpp": true, "h": true, "hpp": true, "java": true,
	"go": true, "php": true, "rb": true, "pl": true, "lua": true,
	"vim": true, "sql": true, "csv": true, "mod": true, "sum": true,
}

// textNames are well-known extensionless text files.
var textNames = map[string]bool{
	"readme": true, "license": true, "changelog": true, "makefile": true,
	"dockerfile": true, "gitignore": true, "gitattributes": true,
	"editorconfig": true,
}

// IsTextFile reports whether the entry should open in the editor.
func IsTextFile(e Entry) bool {
	if e.IsDir {
		return false
	}
	if ext := strings.TrimPrefix(filepath.Ext(e.Name), "."); ext != "" {
		return textExtensions[strings.ToLower(ext)]
	}
	return textNames[strings.ToLower(strings.TrimPrefix(e.Name, "."))]
}

// entrySource adapts []Entry for fuzzy matching on names.
type entrySource []Entry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// Filter returns the entries whose names fuzzy-match query, best matches
// first. An empty query returns entries unchanged. The ".." parent entry
// never matches.
func Filter(entries []Entry, query string) []Entry {
	if strings.TrimSpace(query) == "" {
		return entries
	}
	matches := fuzzy.FindFrom(query, entrySource(entries))
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		if entries[m.Index].Name == ".." {
			continue
		}
		out = append(out, entries[m.Index])
	}
	return out
}
