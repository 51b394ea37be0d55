package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FindLatestFileWithPrefix returns the most recently modified file in dir
// whose name starts with prefix.
func FindLatestFileWithPrefix(dir string, prefix string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("unable to read directory: %w", err)
	}

	var latestFile string
	var latestModTime time.Time

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), prefix) {
			continue
		}

		info, err := file.Info()
		if err != nil {
			return "", fmt.Errorf("unable to stat file: %w", err)
		}

		if info.ModTime().After(latestModTime) {
			latestModTime = info.ModTime()
			latestFile = filepath.Join(dir, file.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no files found with prefix %q in %s", prefix, dir)
	}

	return latestFile, nil
}

// GetLatestFile picks the newest entry with the given prefix from an already
// listed remote directory.
func GetLatestFile(files []os.FileInfo, filePrefix string) (os.FileInfo, error) {
	var latestFile os.FileInfo
	var latestModTime time.Time

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), filePrefix) {
			continue
		}
		if file.ModTime().After(latestModTime) {
			latestFile = file
			latestModTime = file.ModTime()
		}
	}

	if latestFile == nil {
		return nil, fmt.Errorf("no files found with prefix %q", filePrefix)
	}

	return latestFile, nil
}
