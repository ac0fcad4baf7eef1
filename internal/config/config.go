// Package config provides the artifact locations and the duplicate allow-list, optionally read from vuidcheck.yaml.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the base name of the optional configuration file.
const FileName = "vuidcheck"

// DefaultSearchPaths are probed for the configuration file if none are given.
var DefaultSearchPaths = []string{".", "./scripts"}

// Generated names files produced by the build and the directories probed for them.
type Generated struct {
	Directories  []string `mapstructure:"directories"`
	Subdirectory string   `mapstructure:"subdirectory"`
	Files        []string `mapstructure:"files"`
}

// Tests names the test sources and the fixture groups whose TEST_F declarations are indexed.
type Tests struct {
	Files  []string `mapstructure:"files"`
	Groups []string `mapstructure:"groups"`
}

// Settings locates all artifacts. Relative paths are relative to Root.
// A relative Root read from a configuration file is relative to that file's directory.
type Settings struct {
	Root              string    `mapstructure:"root"`
	Database          string    `mapstructure:"database"`
	Spec              string    `mapstructure:"spec"`
	Sources           []string  `mapstructure:"sources"`
	Generated         Generated `mapstructure:"generated"`
	Tests             Tests     `mapstructure:"tests"`
	AllowedDuplicates []string  `mapstructure:"allowed_duplicates"`

	file string
}

// Load reads the first vuidcheck.yaml found in the search paths on top of the defaults.
// Without any configuration file the defaults apply and Root stays relative to the working directory.
func Load(searchPaths ...string) (*Settings, error) {
	if len(searchPaths) == 0 {
		searchPaths = DefaultSearchPaths
	}

	v := viper.New()
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, path := range searchPaths {
		v.AddConfigPath(path)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading configuration failed: %w", err)
		}
	}

	settings := &Settings{file: v.ConfigFileUsed()}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("decoding configuration failed: %w", err)
	}
	if settings.file != "" && !filepath.IsAbs(settings.Root) {
		settings.Root = filepath.Join(filepath.Dir(settings.file), settings.Root)
	}
	return settings, nil
}

// Defaults returns the built-in settings without consulting any file.
func Defaults() *Settings {
	v := viper.New()
	setDefaults(v)
	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		panic(err) //defaults always decode
	}
	return settings
}

// File is the configuration file used, empty if only defaults apply.
func (s *Settings) File() string {
	return s.file
}

// Resolve makes a configured path absolute-or-root-relative.
func (s *Settings) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Root, path)
}

// ResolveAll applies Resolve to each path.
func (s *Settings) ResolveAll(paths []string) []string {
	resolved := make([]string, len(paths))
	for i, path := range paths {
		resolved[i] = s.Resolve(path)
	}
	return resolved
}
