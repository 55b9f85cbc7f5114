package filesystem

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"sort"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	kfs "github.com/kr/fs"
)

// MemFileSystem implements FileSystem over an in-memory go-billy tree.
//
// memfs creates parent directories implicitly and has no single-level
// mkdir; this adapter enforces the POSIX behavior the helper layer expects
// (missing parents are NotFound, Mkdir on an existing entry is Exist).
type MemFileSystem struct {
	fs   billy.Filesystem
	opts options
}

// NewMemFileSystem creates an empty in-memory filesystem.
func NewMemFileSystem(opts ...Option) *MemFileSystem {
	return &MemFileSystem{
		fs:   memfs.New(),
		opts: applyOptions(opts),
	}
}

// Create creates or truncates a file for writing.
func (m *MemFileSystem) Create(name string) (File, error) {
	return m.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// Lstat returns file information without following a final symlink.
func (m *MemFileSystem) Lstat(name string) (os.FileInfo, error) {
	info, err := m.fs.Lstat(name)
	if err != nil {
		return nil, memPathError("lstat", name, err)
	}

	return info, nil
}

// Mkdir creates exactly one directory level.
func (m *MemFileSystem) Mkdir(name string, perm os.FileMode) error {
	if err := m.requireParentDir("mkdir", name); err != nil {
		return err
	}

	if _, err := m.fs.Lstat(name); err == nil {
		return &iofs.PathError{Op: "mkdir", Path: name, Err: iofs.ErrExist}
	}

	if err := m.fs.MkdirAll(name, perm); err != nil {
		return memPathError("mkdir", name, err)
	}

	return nil
}

// MkdirAll creates a directory and all necessary parents.
func (m *MemFileSystem) MkdirAll(name string, perm os.FileMode) error {
	for dir := path.Clean("/" + name); dir != "/"; dir = path.Dir(dir) {
		info, err := m.fs.Stat(dir)
		if err != nil {
			continue
		}

		if !info.IsDir() {
			return &iofs.PathError{Op: "mkdir", Path: name, Err: errNotDir}
		}

		// An existing directory means every ancestor exists too.
		break
	}

	if err := m.fs.MkdirAll(name, perm); err != nil {
		return memPathError("mkdir", name, err)
	}

	return nil
}

// Open opens a file for reading.
func (m *MemFileSystem) Open(name string) (File, error) {
	return m.OpenFile(name, os.O_RDONLY, 0)
}

// OpenFile opens a file with explicit flags.
func (m *MemFileSystem) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	if flag&os.O_CREATE != 0 {
		if err := m.requireParentDir("open", name); err != nil {
			return nil, err
		}
	}

	if info, err := m.fs.Stat(name); err == nil && info.IsDir() && flag&(os.O_WRONLY|os.O_RDWR) != 0 {
		return nil, &iofs.PathError{Op: "open", Path: name, Err: errIsDir}
	}

	f, err := m.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, memPathError("open", name, err)
	}

	return &memFile{file: f, fs: m}, nil
}

// ReadDir lists a directory. memfs keeps no creation order, so entries
// come back sorted by name.
func (m *MemFileSystem) ReadDir(name string) ([]iofs.DirEntry, error) {
	info, err := m.fs.Stat(name)
	if err != nil {
		return nil, memPathError("readdir", name, err)
	}

	if !info.IsDir() {
		return nil, &iofs.PathError{Op: "readdir", Path: name, Err: errNotDir}
	}

	infos, err := m.fs.ReadDir(name)
	if err != nil {
		return nil, memPathError("readdir", name, err)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	entries := make([]iofs.DirEntry, len(infos))
	for i, fi := range infos {
		entries[i] = iofs.FileInfoToDirEntry(fi)
	}

	return entries, nil
}

// Readlink returns the target of a symbolic link.
func (m *MemFileSystem) Readlink(link string) (string, error) {
	target, err := m.fs.Readlink(link)
	if err != nil {
		return "", memPathError("readlink", link, err)
	}

	return target, nil
}

// Remove removes a file or empty directory.
func (m *MemFileSystem) Remove(name string) error {
	info, err := m.fs.Lstat(name)
	if err != nil {
		return memPathError("remove", name, err)
	}

	if info.IsDir() {
		children, err := m.fs.ReadDir(name)
		if err != nil {
			return memPathError("remove", name, err)
		}

		if len(children) > 0 {
			return &iofs.PathError{Op: "remove", Path: name, Err: errNotEmpty}
		}
	}

	if err := m.fs.Remove(name); err != nil {
		return memPathError("remove", name, err)
	}

	return nil
}

// Scan returns an iterator over all entries in an in-memory tree.
func (m *MemFileSystem) Scan(name string) FileScanner {
	return newWalkScanner(name, m.Walker(name), relativePath)
}

// Stat returns file information, following symlinks.
func (m *MemFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := m.fs.Stat(name)
	if err != nil {
		return nil, memPathError("stat", name, err)
	}

	return info, nil
}

// Supports implements Capable.
func (m *MemFileSystem) Supports(c Capability) bool {
	return c == CapSymlink && !m.opts.noSymlinks
}

// Symlink creates link pointing at target.
func (m *MemFileSystem) Symlink(target, link string) error {
	if err := m.requireParentDir("symlink", link); err != nil {
		return err
	}

	if err := m.fs.Symlink(target, link); err != nil {
		return memPathError("symlink", link, err)
	}

	return nil
}

// Walker returns a kr/fs walker over the in-memory tree.
func (m *MemFileSystem) Walker(root string) *kfs.Walker {
	return kfs.WalkFS(root, memWalkFS{fs: m.fs})
}

func (m *MemFileSystem) requireParentDir(op, name string) error {
	parent := path.Dir(path.Clean("/" + name))
	if parent == "/" {
		return nil
	}

	info, err := m.fs.Stat(parent)
	if err != nil {
		return &iofs.PathError{Op: op, Path: name, Err: iofs.ErrNotExist}
	}

	if !info.IsDir() {
		return &iofs.PathError{Op: op, Path: name, Err: errNotDir}
	}

	return nil
}

// unexported variables.
var (
	errIsDir    = syscall.EISDIR
	errNotDir   = syscall.ENOTDIR
	errNotEmpty = syscall.ENOTEMPTY
)

// memPathError normalizes memfs errors, which are sometimes bare
// sentinels, into *fs.PathError values.
func memPathError(op, name string, err error) error {
	var pathErr *iofs.PathError
	if errors.As(err, &pathErr) {
		return err
	}

	return &iofs.PathError{Op: op, Path: name, Err: err}
}

// memFile wraps a go-billy File and satisfies File.
type memFile struct {
	file billy.File
	fs   *MemFileSystem
}

func (f *memFile) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", f.file.Name(), err)
	}

	return nil
}

func (f *memFile) Name() string {
	return f.file.Name()
}

func (f *memFile) Read(p []byte) (int, error) {
	return f.file.Read(p) //nolint:wrapcheck // io.EOF must pass through unwrapped
}

func (f *memFile) Stat() (os.FileInfo, error) {
	return f.fs.Stat(f.file.Name())
}

func (f *memFile) Write(p []byte) (int, error) {
	return f.file.Write(p) //nolint:wrapcheck // short-write accounting belongs to the caller
}

// memWalkFS adapts billy to the kr/fs FileSystem interface.
type memWalkFS struct {
	fs billy.Filesystem
}

func (w memWalkFS) ReadDir(dirname string) ([]os.FileInfo, error) {
	infos, err := w.fs.ReadDir(dirname)
	if err != nil {
		return nil, err //nolint:wrapcheck // surfaced through the walker
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Name() < infos[j].Name() })

	return infos, nil
}

func (w memWalkFS) Lstat(name string) (os.FileInfo, error) {
	return w.fs.Lstat(name) //nolint:wrapcheck // surfaced through the walker
}

func (w memWalkFS) Join(elem ...string) string {
	return path.Join(elem...)
}
