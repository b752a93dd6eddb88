package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tu "lspretty/internal/testutil"
)

func TestPrefs_LoadMissingYieldsDefaults(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)() // fallback

	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != Default() {
		t.Fatalf("missing file should yield defaults, got %+v", p)
	}
	if p.ShowHidden || !p.HumanSizes || !p.NerdFont {
		t.Fatalf("unexpected defaults %+v", p)
	}
}

func TestPrefs_SaveLoadRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	want := Prefs{ShowHidden: true, HumanSizes: false, NerdFont: true}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip: got %+v want %+v", got, want)
	}

	p, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if !strings.HasPrefix(p, tmp) || filepath.Base(p) != "prefs.json" {
		t.Fatalf("prefs path = %q", p)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("prefs file missing: %v", err)
	}
}

func TestPrefs_CorruptFile(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	p, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load()
	if err == nil {
		t.Fatal("expected error for corrupt prefs")
	}
	if got != Default() {
		t.Fatalf("corrupt prefs should fall back to defaults, got %+v", got)
	}
}
