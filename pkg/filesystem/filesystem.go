// Package filesystem provides an abstraction layer for filesystem operations
// so the helper layer can run against the local disk, an in-memory tree or
// an SFTP server without change.
package filesystem

import (
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"runtime"

	kfs "github.com/kr/fs"
)

// Exported constants.
const (
	// CapSymlink reports support for creating and reading symbolic links.
	CapSymlink Capability = "symlink"
)

// Capability names an optional feature a backend may provide.
type Capability string

// Capable is implemented by filesystems that can report optional features.
type Capable interface {
	Supports(c Capability) bool
}

// File is an interface that abstracts an open file handle.
// A handle is owned by whoever opened it and must be closed by them.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Name() string
	Stat() (os.FileInfo, error)
}

// FileSystem is an interface that abstracts filesystem operations.
type FileSystem interface {
	// Scan returns an iterator over all entries below path, recursively.
	Scan(path string) FileScanner
	// Walker returns a kr/fs walker rooted at path.
	Walker(root string) *kfs.Walker

	Open(path string) (File, error)
	Create(path string) (File, error)
	OpenFile(path string, flag int, perm os.FileMode) (File, error)
	Mkdir(path string, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	// ReadDir lists path in the order the backend reports; it does not sort.
	ReadDir(path string) ([]iofs.DirEntry, error)
	// Remove removes a file or empty directory.
	Remove(path string) error
	Stat(path string) (os.FileInfo, error)
}

// SymlinkFileSystem is implemented by backends that can handle symbolic links.
// Implementing it is not enough; check Supports(fsys, CapSymlink) first.
type SymlinkFileSystem interface {
	FileSystem
	Lstat(path string) (os.FileInfo, error)
	Symlink(target, link string) error
	Readlink(link string) (string, error)
}

// Supports reports whether fsys provides capability c.
// Backends that do not implement Capable support nothing optional.
func Supports(fsys FileSystem, c Capability) bool {
	capable, ok := fsys.(Capable)
	if !ok {
		return false
	}

	return capable.Supports(c)
}

// Option configures a backend.
type Option func(*options)

// WithoutSymlinks makes the backend report no symlink capability.
func WithoutSymlinks() Option {
	return func(o *options) {
		o.noSymlinks = true
	}
}

type options struct {
	noSymlinks bool
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct {
	opts options
}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem(opts ...Option) *RealFileSystem {
	return &RealFileSystem{opts: applyOptions(opts)}
}

// Create creates or truncates a file for writing.
func (fs *RealFileSystem) Create(path string) (File, error) {
	file, err := os.Create(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	return file, nil
}

// Lstat returns file information without following a final symlink.
func (fs *RealFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat %s: %w", path, err)
	}

	return info, nil
}

// Mkdir creates exactly one directory.
func (fs *RealFileSystem) Mkdir(path string, perm os.FileMode) error {
	err := os.Mkdir(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// MkdirAll creates a directory and all necessary parents.
func (fs *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// Open opens a file for reading.
func (fs *RealFileSystem) Open(path string) (File, error) {
	file, err := os.Open(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// OpenFile opens a file with explicit flags.
func (fs *RealFileSystem) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	file, err := os.OpenFile(path, flag, perm) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// ReadDir lists a directory in the order the operating system returns it.
func (fs *RealFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	dir, err := os.Open(path) // #nosec G304 - file path is controlled by caller
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	defer func() {
		_ = dir.Close()
	}()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	return entries, nil
}

// Readlink returns the target of a symbolic link.
func (fs *RealFileSystem) Readlink(link string) (string, error) {
	target, err := os.Readlink(link)
	if err != nil {
		return "", fmt.Errorf("failed to read link %s: %w", link, err)
	}

	return target, nil
}

// Remove removes a file or empty directory.
func (fs *RealFileSystem) Remove(path string) error {
	err := os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// Scan returns an iterator over all files in a directory tree.
func (fs *RealFileSystem) Scan(path string) FileScanner {
	return newWalkScanner(path, fs.Walker(path), filepath.Rel)
}

// Stat returns file information.
func (fs *RealFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return info, nil
}

// Supports implements Capable.
func (fs *RealFileSystem) Supports(c Capability) bool {
	switch c {
	case CapSymlink:
		return !fs.opts.noSymlinks && platformSupportsSymlinks(runtime.GOOS)
	default:
		return false
	}
}

// Symlink creates link pointing at target. The target is stored as given
// and not resolved.
func (fs *RealFileSystem) Symlink(target, link string) error {
	err := os.Symlink(target, link)
	if err != nil {
		return fmt.Errorf("failed to create symlink %s -> %s: %w", link, target, err)
	}

	return nil
}

// Walker returns a kr/fs walker over the local tree.
func (fs *RealFileSystem) Walker(root string) *kfs.Walker {
	return kfs.Walk(root)
}

// platformSupportsSymlinks reports whether os.Symlink can work on goos.
func platformSupportsSymlinks(goos string) bool {
	switch goos {
	case "plan9", "js", "wasip1":
		return false
	default:
		return true
	}
}
