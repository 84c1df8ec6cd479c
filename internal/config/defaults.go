package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// PlatformDataDir returns the platform-specific data directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/hipkey/
//   - Linux:   ~/.local/share/hipkey/
//   - Windows: %APPDATA%\hipkey\
//
// Falls back to ~/.hipkey if platform detection fails.
func PlatformDataDir() string {
	switch runtime.GOOS {
	case "darwin":
		return macOSDataDir()
	case "linux":
		return linuxDataDir()
	case "windows":
		return windowsDataDir()
	default:
		return fallbackDataDir()
	}
}

// PlatformConfigDir returns the platform-specific config directory.
//
// Platform paths:
//   - macOS:   ~/Library/Application Support/hipkey/
//   - Linux:   ~/.config/hipkey/
//   - Windows: %APPDATA%\hipkey\
func PlatformConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		return macOSDataDir() // macOS uses same dir for config and data
	case "linux":
		return linuxConfigDir()
	case "windows":
		return windowsDataDir() // Windows uses same dir for config and data
	default:
		return fallbackDataDir()
	}
}

// macOS-specific paths

func macOSDataDir() string {
	home := os.Getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}
	return filepath.Join(home, "Library", "Application Support", "hipkey")
}

// Linux-specific paths following XDG Base Directory Specification

func linuxDataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "hipkey")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "hipkey")
}

func linuxConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "hipkey")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hipkey")
}

// Windows-specific paths

func windowsDataDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "hipkey")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "AppData", "Roaming", "hipkey")
}

func fallbackDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".hipkey")
}

// DefaultPaths collects the default locations for every file hip-key
// touches on the current platform.
type DefaultPaths struct {
	DataDir   string
	ConfigDir string

	ConfigFile     string
	DictionaryFile string
	LogFile        string
}

// GetDefaultPaths returns all default paths for the current platform.
func GetDefaultPaths() *DefaultPaths {
	dataDir := HipkeyDir()
	configDir := PlatformConfigDir()

	return &DefaultPaths{
		DataDir:   dataDir,
		ConfigDir: configDir,

		ConfigFile:     filepath.Join(configDir, "config.toml"),
		DictionaryFile: filepath.Join(dataDir, "dict.db"),
		LogFile:        filepath.Join(dataDir, "hipkey.log"),
	}
}

// SupportedConfigFormats returns the supported config file extensions.
func SupportedConfigFormats() []string {
	return []string{
		"toml",
		"json",
		"yaml",
		"yml",
	}
}

// FindConfigFile searches for a config file in standard locations and
// returns the first match, or empty string if none exists.
func FindConfigFile() string {
	paths := GetDefaultPaths()

	// Search order: current directory, then config directory, then the
	// data directory.
	searchDirs := []string{
		".",
		paths.ConfigDir,
		paths.DataDir,
	}

	for _, dir := range searchDirs {
		for _, ext := range SupportedConfigFormats() {
			path := filepath.Join(dir, "config."+ext)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}
