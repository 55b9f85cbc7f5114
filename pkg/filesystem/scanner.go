package filesystem

import (
	"fmt"
	"os"
	"path"
	"time"

	kfs "github.com/kr/fs"
)

// FileScanner is an iterator over files in a directory tree.
// It provides a simple Next pattern for traversing directory contents.
type FileScanner interface {
	// Next advances to the next file and returns its info.
	// Returns (FileInfo{}, false) when done or on error.
	// Check Err() after Next() returns false to distinguish between end-of-scan and error.
	Next() (FileInfo, bool)

	// Err returns any error that occurred during scanning.
	// Should be checked after Next() returns false.
	Err() error
}

// FileInfo contains metadata about a scanned entry.
type FileInfo struct {
	// RelativePath is the path relative to the scan root
	RelativePath string

	// Size is the file size in bytes
	Size int64

	// ModTime is the modification time
	ModTime time.Time

	// IsDir indicates if this is a directory
	IsDir bool

	// IsSymlink indicates the entry itself is a symbolic link (not followed)
	IsSymlink bool
}

// relFunc computes the path of target relative to root.
type relFunc func(root, target string) (string, error)

// walkScanner adapts a kr/fs walker to FileScanner. It steps the walker
// lazily, one entry per Next call, and stops at the first walk error.
type walkScanner struct {
	root   string
	walker *kfs.Walker
	rel    relFunc
	err    error
	done   bool
}

// newWalkScanner creates a scanner over walker, reporting paths relative to root.
func newWalkScanner(root string, walker *kfs.Walker, rel relFunc) *walkScanner {
	return &walkScanner{
		root:   root,
		walker: walker,
		rel:    rel,
	}
}

// newErrScanner creates a scanner already in an error state.
func newErrScanner(err error) *walkScanner {
	return &walkScanner{err: err, done: true}
}

// Err returns any error that occurred during scanning.
func (s *walkScanner) Err() error {
	return s.err
}

// Next advances to the next entry and returns its info.
func (s *walkScanner) Next() (FileInfo, bool) {
	for !s.done && s.walker.Step() {
		if err := s.walker.Err(); err != nil {
			s.err = fmt.Errorf("error scanning %s: %w", s.root, err)
			s.done = true

			return FileInfo{}, false
		}

		fullPath := s.walker.Path()

		relPath, err := s.rel(s.root, fullPath)
		if err != nil {
			s.err = fmt.Errorf("failed to get relative path for %s: %w", fullPath, err)
			s.done = true

			return FileInfo{}, false
		}

		// Skip the root directory itself
		if relPath == "." {
			continue
		}

		stat := s.walker.Stat()

		return FileInfo{
			RelativePath: relPath,
			Size:         stat.Size(),
			ModTime:      stat.ModTime(),
			IsDir:        stat.IsDir(),
			IsSymlink:    stat.Mode()&os.ModeSymlink != 0,
		}, true
	}

	s.done = true

	return FileInfo{}, false
}

// relativePath computes the relative path from root to target.
// Uses path package (not filepath) since SFTP and in-memory trees always use forward slashes.
func relativePath(root, target string) (string, error) {
	root = path.Clean(root)
	target = path.Clean(target)

	if root == target {
		return ".", nil
	}

	if root == "." {
		return target, nil
	}

	// Ensure root ends with /
	if root != "/" {
		root += "/"
	}

	if len(target) < len(root) || target[:len(root)] != root {
		return "", fmt.Errorf("target %s is not under root %s", target, root) //nolint:err113 // Path validation error with actual paths
	}

	return target[len(root):], nil
}
