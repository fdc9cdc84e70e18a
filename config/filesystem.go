package config

import (
	"os"
)

// FileSystem abstracts file access for the loader (useful for testing).
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

// ReadFile implements FileSystem.
func (RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists implements FileSystem.
func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
