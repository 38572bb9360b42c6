package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wsindicator/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	DisplayMillis  int `yaml:"display_millis"`
	FadeInMillis   int `yaml:"fade_in_millis"`
	FadeOutMillis  int `yaml:"fade_out_millis"`
	DebounceMillis int `yaml:"debounce_millis"`
	TickMillis     int `yaml:"tick_millis"`

	DotSpacing   float64 `yaml:"dot_spacing"`
	PadH         float64 `yaml:"pad_h"`
	PadV         float64 `yaml:"pad_v"`
	DotRadius    float64 `yaml:"dot_radius"`
	ActiveRadius float64 `yaml:"active_radius"`
}

// LoadSettings reads indicator tuning from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	settings := model.DefaultSettings()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes indicator tuning to YAML.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		DisplayMillis:  int(settings.DisplayDuration / time.Millisecond),
		FadeInMillis:   int(settings.FadeInDuration / time.Millisecond),
		FadeOutMillis:  int(settings.FadeOutDuration / time.Millisecond),
		DebounceMillis: int(settings.DebounceDelay / time.Millisecond),
		TickMillis:     int(settings.TickInterval / time.Millisecond),
		DotSpacing:     float64(settings.DotSpacing),
		PadH:           float64(settings.PadH),
		PadV:           float64(settings.PadV),
		DotRadius:      float64(settings.DotRadius),
		ActiveRadius:   float64(settings.ActiveRadius),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.DisplayMillis > 0 {
		settings.DisplayDuration = time.Duration(fileData.DisplayMillis) * time.Millisecond
	}
	if fileData.FadeInMillis > 0 {
		settings.FadeInDuration = time.Duration(fileData.FadeInMillis) * time.Millisecond
	}
	if fileData.FadeOutMillis > 0 {
		settings.FadeOutDuration = time.Duration(fileData.FadeOutMillis) * time.Millisecond
	}
	if fileData.DebounceMillis > 0 {
		settings.DebounceDelay = time.Duration(fileData.DebounceMillis) * time.Millisecond
	}
	if fileData.TickMillis > 0 {
		settings.TickInterval = time.Duration(fileData.TickMillis) * time.Millisecond
	}

	if fileData.DotSpacing > 0 {
		settings.DotSpacing = float32(fileData.DotSpacing)
	}
	if fileData.PadH > 0 {
		settings.PadH = float32(fileData.PadH)
	}
	if fileData.PadV > 0 {
		settings.PadV = float32(fileData.PadV)
	}
	if fileData.DotRadius > 0 {
		settings.DotRadius = float32(fileData.DotRadius)
	}
	if fileData.ActiveRadius > 0 {
		settings.ActiveRadius = float32(fileData.ActiveRadius)
	}
}
