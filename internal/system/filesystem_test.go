package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "file.html")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing directory", tmpDir, true},
		{"regular file", filePath, false},
		{"missing path", filepath.Join(tmpDir, "missing"), false},
	}

	fs := NewFileSystem()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.DirectoryExists(tt.path)
			if err != nil {
				t.Fatalf("DirectoryExists() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DirectoryExists(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRemoveDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	public := filepath.Join(tmpDir, "public")
	if err := os.MkdirAll(filepath.Join(public, "posts", "alerts"), 0755); err != nil {
		t.Fatalf("Failed to create test tree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(public, "posts", "alerts", "index.html"), []byte("<p>"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	fs := NewFileSystem()
	if err := fs.RemoveDirectory(public); err != nil {
		t.Fatalf("RemoveDirectory() error = %v", err)
	}
	if _, err := os.Stat(public); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed, stat error = %v", public, err)
	}

	// Removing again is not an error
	if err := fs.RemoveDirectory(public); err != nil {
		t.Errorf("RemoveDirectory() on missing path error = %v", err)
	}
}

func TestRemoveDirectoryRefusesDangerousPaths(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"blank path", "   "},
		{"root", "/"},
		{"top-level directory", "/etc"},
		{"top-level with trailing slash", "/usr/"},
		{"critical nested path", "/usr/local"},
		{"working directory", cwd},
		{"working directory relative", "."},
	}

	fs := NewFileSystem()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := fs.RemoveDirectory(tt.path); err == nil {
				t.Errorf("RemoveDirectory(%q) expected error, got nil", tt.path)
			}
		})
	}
}
