package fileops

import (
	pkgerrors "github.com/joe/fstour/pkg/errors"
	"github.com/joe/fstour/pkg/filesystem"
	"github.com/joe/fstour/pkg/pathutil"
)

// Symlink creates link pointing at target. The target text is stored as
// given; it is not resolved or checked.
//
// When the backend does not support symbolic links the call fails with
// KindUnsupported and the filesystem is not touched.
func (fo *FileOps) Symlink(target string, link pathutil.Path) error {
	sfs, ok := fo.symlinkFS()
	if !ok {
		return pkgerrors.WithKind("symlink", link.Display(), pkgerrors.KindUnsupported, pkgerrors.ErrUnsupported)
	}

	if err := sfs.Symlink(target, link.Native()); err != nil {
		return pkgerrors.New("symlink", link.Display(), err)
	}

	return nil
}

// ReadLink returns the target stored in the symbolic link at link.
func (fo *FileOps) ReadLink(link pathutil.Path) (pathutil.Path, error) {
	sfs, ok := fo.symlinkFS()
	if !ok {
		return pathutil.Path{}, pkgerrors.WithKind("readlink", link.Display(), pkgerrors.KindUnsupported, pkgerrors.ErrUnsupported)
	}

	target, err := sfs.Readlink(link.Native())
	if err != nil {
		return pathutil.Path{}, pkgerrors.New("readlink", link.Display(), err)
	}

	return pathutil.New(target), nil
}

// SupportsSymlinks reports whether Symlink can succeed on this backend.
func (fo *FileOps) SupportsSymlinks() bool {
	_, ok := fo.symlinkFS()

	return ok
}

func (fo *FileOps) symlinkFS() (filesystem.SymlinkFileSystem, bool) {
	if !filesystem.Supports(fo.FS, filesystem.CapSymlink) {
		return nil, false
	}

	sfs, ok := fo.FS.(filesystem.SymlinkFileSystem)

	return sfs, ok
}
