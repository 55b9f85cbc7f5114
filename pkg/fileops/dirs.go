package fileops

import (
	"errors"
	iofs "io/fs"
	"syscall"

	pkgerrors "github.com/joe/fstour/pkg/errors"
	"github.com/joe/fstour/pkg/filesystem"
	"github.com/joe/fstour/pkg/pathutil"
)

// DirEntry is one child of a listed directory. Metadata is looked up on
// demand; a failed lookup is reported by Info for that entry alone.
type DirEntry struct {
	Path pathutil.Path

	entry iofs.DirEntry
}

// Name returns the entry's base name.
func (e DirEntry) Name() string {
	return e.entry.Name()
}

// IsDir reports whether the entry is a directory.
func (e DirEntry) IsDir() bool {
	return e.entry.IsDir()
}

// Info returns the entry's metadata.
func (e DirEntry) Info() (iofs.FileInfo, error) {
	info, err := e.entry.Info()
	if err != nil {
		return nil, pkgerrors.New("stat", e.Path.Display(), err)
	}

	return info, nil
}

// CreateDir creates exactly one directory. It fails with KindAlreadyExists
// when p exists and KindNotFound when the parent is missing.
func (fo *FileOps) CreateDir(p pathutil.Path) error {
	if err := fo.FS.Mkdir(p.Native(), DefaultDirPermissions); err != nil {
		return pkgerrors.New("mkdir", p.Display(), err)
	}

	return nil
}

// CreateDirAll creates p and any missing parents. It does nothing when p
// already is a directory.
func (fo *FileOps) CreateDirAll(p pathutil.Path) error {
	if err := fo.FS.MkdirAll(p.Native(), DefaultDirPermissions); err != nil {
		return pkgerrors.New("mkdir", p.Display(), err)
	}

	return nil
}

// RemoveFile removes a file or symbolic link. Directories are refused
// with KindIsDirectory; use RemoveDir for them.
func (fo *FileOps) RemoveFile(p pathutil.Path) error {
	info, err := fo.lstat(p.Native())
	if err != nil {
		return pkgerrors.New("remove", p.Display(), err)
	}

	if info.IsDir() {
		return pkgerrors.WithKind("remove", p.Display(), pkgerrors.KindIsDirectory, syscall.EISDIR)
	}

	if err := fo.FS.Remove(p.Native()); err != nil {
		return pkgerrors.New("remove", p.Display(), err)
	}

	return nil
}

// RemoveDir removes an empty directory. It fails with
// KindDirectoryNotEmpty when p has children and KindNotDirectory when p is
// not a directory.
func (fo *FileOps) RemoveDir(p pathutil.Path) error {
	info, err := fo.lstat(p.Native())
	if err != nil {
		return pkgerrors.New("rmdir", p.Display(), err)
	}

	if !info.IsDir() {
		return pkgerrors.WithKind("rmdir", p.Display(), pkgerrors.KindNotDirectory, syscall.ENOTDIR)
	}

	err = fo.FS.Remove(p.Native())
	if err == nil {
		return nil
	}

	// Some SFTP servers report a non-empty directory as a generic failure.
	if pkgerrors.KindOf(err) == pkgerrors.KindOther {
		if children, readErr := fo.FS.ReadDir(p.Native()); readErr == nil && len(children) > 0 {
			return pkgerrors.WithKind("rmdir", p.Display(), pkgerrors.KindDirectoryNotEmpty, err)
		}
	}

	return pkgerrors.New("rmdir", p.Display(), err)
}

// ListDir returns the children of directory p in the order the backend
// reports them.
func (fo *FileOps) ListDir(p pathutil.Path) ([]DirEntry, error) {
	entries, err := fo.FS.ReadDir(p.Native())
	if err != nil {
		return nil, pkgerrors.New("readdir", p.Display(), err)
	}

	result := make([]DirEntry, len(entries))
	for i, entry := range entries {
		result[i] = DirEntry{Path: p.Join(entry.Name()), entry: entry}
	}

	return result, nil
}

// Exists reports whether something exists at p, following symbolic links.
// Failures other than a missing entry are returned.
func (fo *FileOps) Exists(p pathutil.Path) (bool, error) {
	_, err := fo.FS.Stat(p.Native())
	if err == nil {
		return true, nil
	}

	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}

	return false, pkgerrors.New("stat", p.Display(), err)
}

// lstat avoids following a final symlink when the backend can tell the
// difference.
func (fo *FileOps) lstat(name string) (iofs.FileInfo, error) {
	if sfs, ok := fo.FS.(filesystem.SymlinkFileSystem); ok {
		return sfs.Lstat(name) //nolint:wrapcheck // wrapped by the caller
	}

	return fo.FS.Stat(name) //nolint:wrapcheck // wrapped by the caller
}
