package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/pyphen"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[hyphenation]
lang = "nl_NL"
right = 3
backend = "dat"

[wrap]
width = 40
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	h := c.Hyphenation
	if h.Lang != "nl_NL" || h.Right != 3 || h.Backend != "dat" || c.Wrap.Width != 40 {
		t.Fatalf("values not loaded: %+v", c)
	}
	if h.Left != pyphen.DefaultLeft || h.Hyphen != "-" || c.Log.Level != "warn" {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []string{
		"[hyphenation]\nleft = -1\n",
		"[hyphenation]\nbackend = \"btree\"\n",
		"[log]\nlevel = \"loud\"\n",
		"[wrap\nwidth = 3\n",
	}
	for _, content := range tests {
		if _, err := LoadConfig(writeConfig(t, content)); err == nil {
			t.Errorf("config %q should be rejected", content)
		}
	}
}

func TestLoadConfigWithPriority(t *testing.T) {
	c, err := LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Wrap.Width != DefaultConfig().Wrap.Width {
		t.Fatalf("expected defaults, got %+v", c)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	c := DefaultConfig()
	c.Hyphenation.CacheWords = 100
	if err := SaveConfig(c, path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *c {
		t.Fatalf("loaded %+v, want %+v", loaded, c)
	}
	if opts := loaded.Options(); len(opts) != 2 {
		t.Fatalf("expected backend and cache options, got %d", len(opts))
	}
}
