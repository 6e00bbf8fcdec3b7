package asset

import (
	"os"
	"path/filepath"
	"testing"
)

func writePalette(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palette.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFallbackIsUsable(t *testing.T) {
	p := Fallback()
	if len(p.Glyphs) == 0 {
		t.Fatal("fallback ramp is empty")
	}
	// Dim-to-bright ordering: the ramp must start with the sparsest glyph
	if p.Glyphs[0] != '.' || p.Glyphs[len(p.Glyphs)-1] != '@' {
		t.Errorf("unexpected ramp order: %q", string(p.Glyphs))
	}
}

func TestLoadRampOnly(t *testing.T) {
	path := writePalette(t, ".oO@\n")

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(p.Glyphs) != ".oO@" {
		t.Errorf("ramp %q", string(p.Glyphs))
	}
	// Tint falls back to the built-in default
	def := Fallback()
	if p.R != def.R || p.G != def.G || p.B != def.B {
		t.Errorf("tint %d %d %d, want default", p.R, p.G, p.B)
	}
}

func TestLoadRampWithTint(t *testing.T) {
	path := writePalette(t, ".:*#\n255 128 0\n")

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.R != 255 || p.G != 128 || p.B != 0 {
		t.Errorf("tint %d %d %d, want 255 128 0", p.R, p.G, p.B)
	}
}

func TestLoadKeepsLeadingSpaceGlyph(t *testing.T) {
	// A space is the dimmest entry of the classic density ramp and must not
	// be trimmed away
	path := writePalette(t, " .:-=+*#%@\r\n120 200 255\n")

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(p.Glyphs) != " .:-=+*#%@" {
		t.Errorf("ramp %q, want leading space preserved", string(p.Glyphs))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writePalette(t, "\n\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty ramp")
	}
}

func TestLoadBadTintLine(t *testing.T) {
	path := writePalette(t, ".:*#\nred green blue\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed tint")
	}
}
