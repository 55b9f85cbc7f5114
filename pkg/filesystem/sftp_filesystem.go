package filesystem

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"

	kfs "github.com/kr/fs"
	"github.com/pkg/sftp"
)

// SFTPFileSystem implements FileSystem over a single SFTP session.
type SFTPFileSystem struct {
	client *sftp.Client
	closer func() error
	opts   options
}

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
// Closing the filesystem closes the connection.
func NewSFTPFileSystem(conn *SFTPConnection, opts ...Option) *SFTPFileSystem {
	return &SFTPFileSystem{
		client: conn.Client(),
		closer: conn.Close,
		opts:   applyOptions(opts),
	}
}

// NewSFTPFileSystemFromClient wraps an existing client. The caller keeps
// ownership of the client; Close is a no-op.
func NewSFTPFileSystemFromClient(client *sftp.Client, opts ...Option) *SFTPFileSystem {
	return &SFTPFileSystem{
		client: client,
		opts:   applyOptions(opts),
	}
}

// Close closes the SFTP session and SSH connection, when owned.
func (fs *SFTPFileSystem) Close() error {
	if fs.closer == nil {
		return nil
	}

	return fs.closer()
}

// Create creates or truncates a remote file for writing.
func (fs *SFTPFileSystem) Create(path string) (File, error) {
	file, err := fs.client.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote file %s: %w", path, err)
	}

	return file, nil
}

// Lstat returns remote file information without following a final symlink.
func (fs *SFTPFileSystem) Lstat(path string) (os.FileInfo, error) {
	info, err := fs.client.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to lstat remote file %s: %w", path, err)
	}

	return info, nil
}

// Mkdir creates exactly one remote directory. SFTP servers apply their own
// default permissions.
func (fs *SFTPFileSystem) Mkdir(path string, _ os.FileMode) error {
	err := fs.client.Mkdir(path)
	if err != nil {
		return fmt.Errorf("failed to create remote directory %s: %w", path, err)
	}

	return nil
}

// MkdirAll creates a remote directory and all necessary parents.
func (fs *SFTPFileSystem) MkdirAll(path string, _ os.FileMode) error {
	err := fs.client.MkdirAll(path)
	if err != nil {
		return fmt.Errorf("failed to create remote directory %s: %w", path, err)
	}

	return nil
}

// Open opens a remote file for reading.
func (fs *SFTPFileSystem) Open(path string) (File, error) {
	file, err := fs.client.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote file %s: %w", path, err)
	}

	return file, nil
}

// OpenFile opens a remote file with explicit flags. Like os.OpenFile, perm
// is applied only to a file this call creates; an existing file keeps its mode.
func (fs *SFTPFileSystem) OpenFile(path string, flag int, perm os.FileMode) (File, error) {
	creating := false

	if flag&os.O_CREATE != 0 && perm != 0 {
		_, err := fs.client.Lstat(path)
		creating = errors.Is(err, iofs.ErrNotExist)
	}

	file, err := fs.client.OpenFile(path, flag)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote file %s: %w", path, err)
	}

	if creating {
		if err := file.Chmod(perm); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to set mode of remote file %s: %w", path, err)
		}
	}

	return file, nil
}

// ReadDir lists a remote directory in the order the server returns it.
func (fs *SFTPFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	infos, err := fs.client.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote directory %s: %w", path, err)
	}

	entries := make([]iofs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = iofs.FileInfoToDirEntry(info)
	}

	return entries, nil
}

// Readlink returns the target of a remote symbolic link.
func (fs *SFTPFileSystem) Readlink(link string) (string, error) {
	target, err := fs.client.ReadLink(link)
	if err != nil {
		return "", fmt.Errorf("failed to read remote link %s: %w", link, err)
	}

	return target, nil
}

// Remove removes a remote file or empty directory.
func (fs *SFTPFileSystem) Remove(path string) error {
	err := fs.client.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove remote file %s: %w", path, err)
	}

	return nil
}

// Scan returns an iterator over all files in a remote directory tree.
func (fs *SFTPFileSystem) Scan(path string) FileScanner {
	if fs.client == nil {
		return newErrScanner(fmt.Errorf("no SFTP session for %s", path)) //nolint:err113 // carries the path
	}

	return newWalkScanner(path, fs.Walker(path), relativePath)
}

// Stat returns file information for a remote file.
func (fs *SFTPFileSystem) Stat(path string) (os.FileInfo, error) {
	info, err := fs.client.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat remote file %s: %w", path, err)
	}

	return info, nil
}

// Supports implements Capable. Whether the server honors symlink requests
// is only known when one is attempted.
func (fs *SFTPFileSystem) Supports(c Capability) bool {
	return c == CapSymlink && !fs.opts.noSymlinks
}

// Symlink creates a remote link pointing at target.
func (fs *SFTPFileSystem) Symlink(target, link string) error {
	err := fs.client.Symlink(target, link)
	if err != nil {
		return fmt.Errorf("failed to create remote symlink %s -> %s: %w", link, target, err)
	}

	return nil
}

// Walker returns the sftp client's kr/fs walker.
func (fs *SFTPFileSystem) Walker(root string) *kfs.Walker {
	return fs.client.Walk(root)
}
