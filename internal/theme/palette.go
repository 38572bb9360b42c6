// Package theme loads the indicator's four color roles from the
// active hyprland palette file.
package theme

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// RGBA is a color with components in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Palette holds the four roles used by the renderer.
type Palette struct {
	Background RGBA
	Active     RGBA
	Foreground RGBA
	Dim        RGBA
}

// Per-role alpha is a design constant; only the hue comes from the
// theme. The active role keeps the source alpha.
const (
	backgroundAlpha = 0.75
	foregroundAlpha = 0.55
	dimAlpha        = 0.25
)

// Default returns the built-in fallback palette (Catppuccin Mocha).
func Default() Palette {
	return Palette{
		Background: RGBA{R: 0.118, G: 0.118, B: 0.180, A: backgroundAlpha},
		Active:     RGBA{R: 0.537, G: 0.705, B: 0.980, A: 1},
		Foreground: RGBA{R: 0.804, G: 0.839, B: 0.957, A: foregroundAlpha},
		Dim:        RGBA{R: 0.576, G: 0.600, B: 0.698, A: dimAlpha},
	}
}

// DefaultPath returns the palette file of the active theme.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "current", "theme", "hyprland-palette.conf")
}

// paletteLine matches `$name = rgba(RRGGBBAA)`.
var paletteLine = regexp.MustCompile(`^\s*\$([A-Za-z_]+)\s*=\s*rgba\(([0-9a-fA-F]{8})\)`)

// Load reads the palette file at path. A missing file or malformed
// lines never fail: unrecognized input is skipped and the fallback
// roles are kept.
func Load(path string) Palette {
	palette := Default()

	file, err := os.Open(path)
	if err != nil {
		log.Printf("theme: no palette at %s, using fallback", path)
		return palette
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		match := paletteLine.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		applyRole(&palette, match[1], parseHex8(match[2]))
	}
	return palette
}

// applyRole maps palette names to indicator roles, preserving the
// per-role alpha constants.
func applyRole(palette *Palette, name string, color RGBA) {
	switch name {
	case "background":
		palette.Background = RGBA{R: color.R, G: color.G, B: color.B, A: backgroundAlpha}
	case "accent", "blue":
		palette.Active = color
	case "foreground":
		palette.Foreground = RGBA{R: color.R, G: color.G, B: color.B, A: foregroundAlpha}
	case "comment":
		palette.Dim = RGBA{R: color.R, G: color.G, B: color.B, A: dimAlpha}
	}
}

func parseHex8(hex string) RGBA {
	component := func(index int) float64 {
		value, _ := strconv.ParseUint(hex[index:index+2], 16, 8)
		return float64(value) / 255
	}
	return RGBA{R: component(0), G: component(2), B: component(4), A: component(6)}
}
