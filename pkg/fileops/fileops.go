// Package fileops provides filesystem helpers: opening and reading files,
// lazy line reading, writing, touching, creating and removing directories,
// listing, walking and symbolic links.
//
// Every helper reports failure as a *errors.PathError whose Kind can be
// inspected with errors.KindOf. Handles opened internally are always
// released before a helper returns.
package fileops

import (
	"github.com/joe/fstour/pkg/filesystem"
)

// Exported constants.
const (
	// DefaultDirPermissions is the permission mode for created directories
	DefaultDirPermissions = 0o755
	// DefaultFilePermissions is the permission mode for created files
	DefaultFilePermissions = 0o644
)

// FileOps runs the helpers against an injected filesystem, so the same code
// works on the local disk, in memory or over SFTP.
type FileOps struct {
	FS filesystem.FileSystem
}

// NewFileOps creates a new FileOps instance with the given filesystem.
func NewFileOps(fs filesystem.FileSystem) *FileOps {
	return &FileOps{FS: fs}
}

// NewRealFileOps creates a new FileOps instance using the real filesystem.
func NewRealFileOps(opts ...filesystem.Option) *FileOps {
	return &FileOps{FS: filesystem.NewRealFileSystem(opts...)}
}
