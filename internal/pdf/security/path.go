package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator restricts file access to a configured directory. An empty
// configured directory means unrestricted access: every path validates.
type PathValidator struct {
	restrictedDirectory string
}

// NewPathValidator creates a new path validator for the given directory.
// The directory does not need to exist yet; it may be created later.
func NewPathValidator(restrictedDirectory string) (*PathValidator, error) {
	return &PathValidator{
		restrictedDirectory: restrictedDirectory,
	}, nil
}

// IsRestricted reports whether a directory restriction is configured
func (v *PathValidator) IsRestricted() bool {
	return v.restrictedDirectory != ""
}

// GetRestrictedDirectory returns the configured directory, empty when unrestricted
func (v *PathValidator) GetRestrictedDirectory() string {
	return v.restrictedDirectory
}

// ValidatePath checks if a path is within the restricted directory
func (v *PathValidator) ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !v.IsRestricted() {
		return nil
	}

	// If the restricted directory doesn't exist yet, skip validation
	if _, err := os.Stat(v.restrictedDirectory); os.IsNotExist(err) {
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	isWithin, err := v.isPathWithinDirectory(absPath)
	if err != nil {
		return fmt.Errorf("path validation failed: %w", err)
	}

	if !isWithin {
		return fmt.Errorf("path is outside configured directory: %s", path)
	}

	return nil
}

// isPathWithinDirectory checks if a path is inside the restricted directory,
// defeating .. segments and symlink escapes.
func (v *PathValidator) isPathWithinDirectory(path string) (bool, error) {
	absDir, err := filepath.Abs(v.restrictedDirectory)
	if err != nil {
		return false, fmt.Errorf("failed to resolve configured directory: %w", err)
	}

	cleanPath := filepath.Clean(path)
	cleanDir := filepath.Clean(absDir)

	// Resolve symlinks on both sides so a link inside the directory cannot
	// point processing outside of it
	realPath := cleanPath
	if info, err := os.Lstat(cleanPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(cleanPath); err == nil {
			realPath = resolved
		}
	}

	realDir := cleanDir
	if resolved, err := filepath.EvalSymlinks(cleanDir); err == nil {
		realDir = resolved
	}

	dirWithSep := cleanDir
	if !strings.HasSuffix(dirWithSep, string(filepath.Separator)) {
		dirWithSep += string(filepath.Separator)
	}

	realDirWithSep := realDir
	if !strings.HasSuffix(realDirWithSep, string(filepath.Separator)) {
		realDirWithSep += string(filepath.Separator)
	}

	pathOk := strings.HasPrefix(cleanPath, dirWithSep) || cleanPath == cleanDir ||
		strings.HasPrefix(cleanPath, realDirWithSep) || cleanPath == realDir
	realPathOk := strings.HasPrefix(realPath, dirWithSep) || realPath == cleanDir ||
		strings.HasPrefix(realPath, realDirWithSep) || realPath == realDir

	return pathOk && realPathOk, nil
}
