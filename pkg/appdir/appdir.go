package appdir

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const dirName = ".saes-go"

var (
	appDirCache string
	mu          sync.Mutex
)

// AppDir returns ~/.saes-go, or the value of SAES_HOME when set.
func AppDir() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if appDirCache != "" {
		return appDirCache, nil
	}
	if d := os.Getenv("SAES_HOME"); d != "" {
		appDirCache = d
		return appDirCache, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("appdir: %w", err)
	}
	appDirCache = filepath.Join(home, dirName)
	return appDirCache, nil
}

// Ensure creates the application directory if needed and returns it.
func Ensure() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("appdir: create %s: %w", dir, err)
	}
	return dir, nil
}

// Resolve returns name unchanged when it is absolute, otherwise joined onto
// the application directory, which is created on demand.
func Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir, err := Ensure()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
