package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != ThemeAuto {
		t.Fatalf("Theme = %q, want %q", p.Theme, ThemeAuto)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "clipdeck")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	prefsFile := filepath.Join(prefsDir, "prefs.toml")
	if err := os.WriteFile(prefsFile, []byte("theme = \"Light\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != ThemeLight {
		t.Fatalf("Theme = %q, want %q", p.Theme, ThemeLight)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	tmp := t.TempDir()
	prefsFile := filepath.Join(tmp, "subdir", "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "dark"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(prefsFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Theme != ThemeDark {
		t.Fatalf("Theme = %q, want %q", loaded.Theme, ThemeDark)
	}
}

func TestLoad_UnknownAndInvalidFallBackToAuto(t *testing.T) {
	for name, content := range map[string]string{
		"empty":   "theme = \"\"\n",
		"unknown": "theme = \"Dracula\"\n",
		"invalid": "not valid toml {{{\n",
	} {
		t.Run(name, func(t *testing.T) {
			prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(prefsFile, []byte(content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			p, err := Load(prefsFile)
			if err != nil {
				t.Fatalf("Load returned error: %v", err)
			}
			if p.Theme != ThemeAuto {
				t.Fatalf("Theme = %q, want %q", p.Theme, ThemeAuto)
			}
		})
	}
}

func TestResolveTheme(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	tests := []struct {
		pref    string
		hasDark func() bool
		want    string
	}{
		{ThemeDark, light, ThemeDark},
		{ThemeLight, dark, ThemeLight},
		{ThemeAuto, dark, ThemeDark},
		{ThemeAuto, light, ThemeLight},
		{"", nil, ThemeDark},
	}
	for _, tt := range tests {
		if got := ResolveTheme(tt.pref, tt.hasDark); got != tt.want {
			t.Fatalf("ResolveTheme(%q) = %q, want %q", tt.pref, got, tt.want)
		}
	}
}

func TestToggle(t *testing.T) {
	if got := Toggle(ThemeDark); got != ThemeLight {
		t.Fatalf("Toggle(dark) = %q, want light", got)
	}
	if got := Toggle(ThemeLight); got != ThemeDark {
		t.Fatalf("Toggle(light) = %q, want dark", got)
	}
}

func TestResolvePath_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := resolvePath("~/clipdeck/prefs.toml")
	if err != nil {
		t.Fatalf("resolvePath returned error: %v", err)
	}
	if want := filepath.Join(home, "clipdeck", "prefs.toml"); got != want {
		t.Fatalf("resolvePath = %q, want %q", got, want)
	}

	got, err = resolvePath("  ")
	if err != nil {
		t.Fatalf("resolvePath(blank) returned error: %v", err)
	}
	if want := filepath.Join(home, ".config", "clipdeck", "prefs.toml"); got != want {
		t.Fatalf("resolvePath(blank) = %q, want %q", got, want)
	}
}
