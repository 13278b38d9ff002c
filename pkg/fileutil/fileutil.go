// Package fileutil provides helpers for locating and reading the pipeline file.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/pto-track/pipecheck/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadText reads path as UTF-8 text. Invalid UTF-8 is an error rather than
// being silently replaced.
func ReadText(path string) (string, error) {
	cleanPath := filepath.Clean(path)
	log.Printf("Reading file: %s", cleanPath)

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%s is not valid UTF-8 text", cleanPath)
	}

	log.Printf("Read %d bytes from %s", len(content), cleanPath)
	return string(content), nil
}
