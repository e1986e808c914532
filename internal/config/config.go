/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"webtoonflow/internal/edit"
)

// AppConfig is the user-editable configuration persisted to a YAML file in
// the user scope. Environment variables are treated as read-only overrides
// at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.

type GeneralConfig struct {
	Language string `yaml:"language"` // string-table tag, e.g. "en", "fr"
	Theme    string `yaml:"theme"`    // "system" | "light" | "dark" (informational for now)
}

// EditorConfig carries the section-height knobs. Form and drag minimums are
// deliberately independent: typed heights may go lower than a drag handle
// allows.
type EditorConfig struct {
	FormMinHeight int `yaml:"form_min_height"`
	DragMinHeight int `yaml:"drag_min_height"`
	MaxHeight     int `yaml:"max_height"`
}

type ExportConfig struct {
	MaxReaderWidth   int    `yaml:"max_reader_width"`
	Animate          bool   `yaml:"animate"`
	AnimationCDN     string `yaml:"animation_cdn"`
	AnimationVersion string `yaml:"animation_version"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Editor        EditorConfig  `yaml:"editor"`
	Export        ExportConfig  `yaml:"export"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{Language: "en", Theme: "system"},
		Editor: EditorConfig{
			FormMinHeight: edit.FormMinSectionHeight,
			DragMinHeight: edit.DragMinSectionHeight,
			MaxHeight:     edit.MaxSectionHeight,
		},
		Export: ExportConfig{
			MaxReaderWidth: 900,
			Animate:        true,
		},
		Logging: LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvLanguage         = "WFL_LANGUAGE"
	EnvExportMaxWidth   = "WFL_EXPORT_MAX_WIDTH"
	EnvExportAnimate    = "WFL_EXPORT_ANIMATE"
	EnvExportCDN        = "WFL_EXPORT_CDN"
	EnvExportCDNVersion = "WFL_EXPORT_CDN_VERSION"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "WFL_LOG_LEVEL"
	EnvLogFormat = "WFL_LOG_FORMAT"
	EnvLogSource = "WFL_LOG_SOURCE"
	EnvLogFile   = "WFL_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "WebtoonFlow")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "WebtoonFlow")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "webtoonflow")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and
// merges environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		// Decode over a defaults copy so booleans keep their default when
		// the file omits the key; bare-struct decoding would read an
		// omitted export.animate as an explicit false.
		fileCfg := Defaults()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.General.Language != "" {
		dst.General.Language = src.General.Language
	}
	if src.General.Theme != "" {
		dst.General.Theme = src.General.Theme
	}
	if src.Editor.FormMinHeight > 0 {
		dst.Editor.FormMinHeight = src.Editor.FormMinHeight
	}
	if src.Editor.DragMinHeight > 0 {
		dst.Editor.DragMinHeight = src.Editor.DragMinHeight
	}
	if src.Editor.MaxHeight > 0 {
		dst.Editor.MaxHeight = src.Editor.MaxHeight
	}
	if src.Export.MaxReaderWidth > 0 {
		dst.Export.MaxReaderWidth = src.Export.MaxReaderWidth
	}
	// booleans: copied directly, so src must be decoded over Defaults()
	// (an omitted key then carries the default, not the zero value)
	dst.Export.Animate = src.Export.Animate
	if src.Export.AnimationCDN != "" {
		dst.Export.AnimationCDN = src.Export.AnimationCDN
	}
	if src.Export.AnimationVersion != "" {
		dst.Export.AnimationVersion = src.Export.AnimationVersion
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvLanguage)); v != "" {
		cfg.General.Language = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportMaxWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Export.MaxReaderWidth = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportAnimate)); v != "" {
		cfg.Export.Animate = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportCDN)); v != "" {
		cfg.Export.AnimationCDN = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportCDNVersion)); v != "" {
		cfg.Export.AnimationVersion = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = isTruthy(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func isTruthy(v string) bool {
	lv := strings.ToLower(v)
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}
