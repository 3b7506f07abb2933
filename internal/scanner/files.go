package scanner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Scanner enumerates candidate files in a directory tree
type Scanner struct {
	logger   *log.Logger
	excluded map[string]bool
}

// New creates a new Scanner that skips the given directory names
func New(logger *log.Logger, excludeDirs []string) *Scanner {
	excluded := make(map[string]bool, len(excludeDirs))
	for _, name := range excludeDirs {
		excluded[name] = true
	}
	return &Scanner{logger: logger, excluded: excluded}
}

// ListFiles recursively finds files under rootPath whose extension is in
// exts. Paths are returned relative to rootPath in lexical walk order.
func (s *Scanner) ListFiles(rootPath string, exts []string) ([]string, error) {
	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[normalizeExt(ext)] = true
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", rootPath)
	}

	var files []string
	err = filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			s.logger.Printf("Warning: skipping %s: %v", path, err)
			return nil // Skip directories we can't access
		}
		if path == rootPath {
			return nil
		}

		// Skip hidden files and directories
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if s.excluded[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if !wanted[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		rel, err := filepath.Rel(rootPath, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// normalizeExt lower-cases ext and ensures a leading dot
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
