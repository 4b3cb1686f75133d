package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// File is one static asset found under the asset root.
type File struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the root; also the site path.
	Size        int64
	ContentHash string // SHA-256 hex digest.
}

// WalkConfig controls Walk.
type WalkConfig struct {
	RootDir string
	Include []string
	Exclude []string
	// SkipPaths are absolute directories left out of the walk, typically the
	// build output when it lives inside RootDir.
	SkipPaths []string
}

// Walk lists every regular file under RootDir that passes the include and
// exclude filters and is not ignored by a root .gitignore. A missing root
// yields no files.
func Walk(config WalkConfig) ([]File, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	skip := make(map[string]bool, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		if abs, err := filepath.Abs(p); err == nil {
			skip[abs] = true
		}
	}

	ignored := loadGitignore(filepath.Join(root, ".gitignore"))

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != root && (shouldSkipDir(d.Name()) || skip[path]) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if matchesGitignore(rel, ignored) ||
			!MatchesInclude(rel, config.Include) ||
			MatchesExclude(rel, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hash, err := hashFile(path)
		if err != nil {
			return fmt.Errorf("hashing %s: %w", rel, err)
		}

		files = append(files, File{
			Path:        path,
			RelPath:     rel,
			Size:        info.Size(),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: walking %s: %w", root, err)
	}
	return files, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// loadGitignore returns the non-empty, non-comment lines of a .gitignore.
func loadGitignore(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// matchesGitignore handles the common subset of gitignore syntax: bare
// names match any path component, patterns with a slash match from the root,
// and a trailing slash restricts a pattern to directories.
func matchesGitignore(relPath string, patterns []string) bool {
	parts := strings.Split(relPath, "/")
	for _, pattern := range patterns {
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimPrefix(strings.TrimSuffix(pattern, "/"), "/")

		if strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, relPath); ok {
				return true
			}
			if ok, _ := doublestar.Match(pattern+"/**", relPath); ok {
				return true
			}
			continue
		}

		// Directory components are every part except the last.
		candidates := parts
		if dirOnly {
			candidates = parts[:len(parts)-1]
		}
		for _, part := range candidates {
			if ok, _ := filepath.Match(pattern, part); ok {
				return true
			}
		}
	}
	return false
}
