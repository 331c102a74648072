package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FindEnvTest returns the nearest regular file called filename (".env" when
// empty), looking in the working directory first and then its parents.
func FindEnvTest(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	if filepath.IsAbs(filename) {
		if isFile(filename) {
			return filename, nil
		}
		return "", fmt.Errorf("%s: %w", filename, fs.ErrNotExist)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if candidate := filepath.Join(dir, filename); isFile(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s: %w", filename, fs.ErrNotExist)
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
