package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for linkfix
	EnvConfigDir = "LINKFIX_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for linkfix
	EnvStateDir = "LINKFIX_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "linkfix"

	// LogFileName is the name of the log file inside the state directory
	LogFileName = "linkfix.log"

	// ConfigBaseName is the user configuration file name without extension
	ConfigBaseName = "config"
)

// ConfigExtensions lists the supported user configuration formats, in lookup order.
var ConfigExtensions = []string{".toml", ".yaml", ".yml"}

// ConfigDir returns the linkfix configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the linkfix state directory, which holds the log file.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	// xdg resolves its base dirs at init; tests change the env afterwards
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the linkfix log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindConfigFile returns the first existing user configuration file in the
// config directory, or "" when there is none.
func FindConfigFile() string {
	dir := ConfigDir()
	for _, ext := range ConfigExtensions {
		path := filepath.Join(dir, ConfigBaseName+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ResolveBinary turns a configured binary path into the path to execute.
// Absolute paths are returned as-is, relative paths are joined to baseDir,
// and with an empty baseDir the bare name is left for PATH lookup. On
// windows ".exe" is appended when the name has no extension.
func ResolveBinary(baseDir, binary string) string {
	if binary == "" {
		return ""
	}
	if runtime.GOOS == "windows" && filepath.Ext(binary) == "" {
		binary += ".exe"
	}
	if filepath.IsAbs(binary) {
		return binary
	}
	if baseDir == "" {
		return filepath.Base(binary)
	}
	return filepath.Join(ExpandHome(baseDir), filepath.FromSlash(binary))
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
