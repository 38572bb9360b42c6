package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func writePalette(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hyprland-palette.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsFallback(t *testing.T) {
	palette := Load(filepath.Join(t.TempDir(), "nope.conf"))
	if palette != Default() {
		t.Fatalf("missing file should yield fallback palette, got %+v", palette)
	}
}

func TestLoadAccentKeepsSourceAlpha(t *testing.T) {
	palette := Load(writePalette(t, "$accent = rgba(89b4faff)\n"))

	want := RGBA{R: float64(0x89) / 255, G: float64(0xb4) / 255, B: float64(0xfa) / 255, A: 1}
	if palette.Active != want {
		t.Fatalf("Active = %+v, want %+v", palette.Active, want)
	}
}

func TestLoadRoleAlphaOverrides(t *testing.T) {
	palette := Load(writePalette(t,
		"$background = rgba(1e1e2e55)\n"+
			"$foreground = rgba(cdd6f411)\n"+
			"$comment = rgba(9399b2ee)\n"))

	// Only hue comes from the theme; role alphas are fixed.
	if palette.Background.A != 0.75 {
		t.Fatalf("background alpha = %v, want 0.75", palette.Background.A)
	}
	if palette.Foreground.A != 0.55 {
		t.Fatalf("foreground alpha = %v, want 0.55", palette.Foreground.A)
	}
	if palette.Dim.A != 0.25 {
		t.Fatalf("dim alpha = %v, want 0.25", palette.Dim.A)
	}
	if palette.Background.R != float64(0x1e)/255 {
		t.Fatalf("background hue not taken from theme: %v", palette.Background.R)
	}
}

func TestLoadBlueIsActiveFallback(t *testing.T) {
	palette := Load(writePalette(t, "$blue = rgba(0000ff80)\n"))

	want := RGBA{R: 0, G: 0, B: 1, A: float64(0x80) / 255}
	if palette.Active != want {
		t.Fatalf("Active = %+v, want %+v", palette.Active, want)
	}
}

func TestLoadSkipsUnrecognizedAndMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "unknown role name", line: "$mystery = rgba(ffffffff)\n"},
		{name: "short hex", line: "$accent = rgba(89b4f)\n"},
		{name: "not hex", line: "$accent = rgba(zzzzzzzz)\n"},
		{name: "no rgba wrapper", line: "$accent = 89b4faff\n"},
		{name: "comment line", line: "# $accent = rgba(89b4faff)\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			palette := Load(writePalette(t, test.line))
			if palette != Default() {
				t.Fatalf("line %q should leave roles untouched", test.line)
			}
		})
	}
}

func TestLoadLastLineWins(t *testing.T) {
	palette := Load(writePalette(t,
		"$accent = rgba(11111111)\n"+
			"$accent = rgba(89b4faff)\n"))

	if palette.Active.A != 1 {
		t.Fatalf("later accent line should win, got %+v", palette.Active)
	}
}
