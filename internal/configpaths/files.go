package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appName = "routecov"

// DefaultConfigDir returns the platform-specific configuration directory for routecov.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// NormalizeFormat maps a format name or alias to json, yaml or toml.
// It returns "" for unknown formats.
func NormalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// ConfigFileName returns the working directory config file name for format.
func ConfigFileName(format string) string {
	return appName + "." + NormalizeFormat(format)
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return os.MkdirAll(dir, 0o755)
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(dir, base string) {
		jsonPaths = append(jsonPaths, filepath.Join(dir, base+".json"))
		yamlPaths = append(yamlPaths, filepath.Join(dir, base+".yaml"), filepath.Join(dir, base+".yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, base+".toml"))
	}

	if userPath != "" {
		switch NormalizeFormat(strings.TrimPrefix(filepath.Ext(userPath), ".")) {
		case "yaml":
			yamlPaths = append(yamlPaths, userPath)
		case "toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	if wd, err := os.Getwd(); err == nil {
		add(wd, appName)
		add(wd, "."+appName)
	}

	if dir, err := DefaultConfigDir(); err == nil {
		add(dir, "config")
	}

	return
}
