package filesystem

import (
	"context"
	"fmt"
	"strings"
)

// Exported constants.
const (
	BackendLocal Backend = "local"
	BackendMem   Backend = "mem"
)

// Backend selects the filesystem used for non-sftp roots.
type Backend string

// ParseBackend parses a backend name from user input.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local", "disk", "os":
		return BackendLocal, nil
	case "mem", "memory":
		return BackendMem, nil
	default:
		return BackendLocal, fmt.Errorf("invalid backend: %s (valid: local, mem)", s) //nolint:err113 // carries the input
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for flag parsing.
func (b *Backend) UnmarshalText(text []byte) error {
	parsed, err := ParseBackend(string(text))
	if err != nil {
		return err
	}

	*b = parsed

	return nil
}

// CreateFileSystem creates a FileSystem for the given root.
// Returns (filesystem, basePath, closer, error).
//   - filesystem: the FileSystem to use for operations
//   - basePath: the path to use with the filesystem (stripped of URL prefix)
//   - closer: a function to call when done (closes SFTP connections), or nil
//
// sftp:// roots always use the SFTP backend; backend picks between the
// local disk and a fresh in-memory tree otherwise.
func CreateFileSystem(
	ctx context.Context, root string, backend Backend, opts ...Option,
) (FileSystem, string, func(), error) {
	loc, err := ParseLocation(root)
	if err != nil {
		return nil, "", nil, err
	}

	if loc.Remote {
		conn, err := Connect(ctx, loc)
		if err != nil {
			return nil, "", nil, fmt.Errorf("failed to connect to %s@%s: %w", loc.User, loc.Address(), err)
		}

		fs := NewSFTPFileSystem(conn, opts...)
		closer := func() {
			_ = fs.Close()
		}

		return fs, loc.Path, closer, nil
	}

	switch backend {
	case BackendMem:
		return NewMemFileSystem(opts...), loc.Path, nil, nil
	case BackendLocal, "":
		return NewRealFileSystem(opts...), loc.Path, nil, nil
	default:
		return nil, "", nil, fmt.Errorf("unknown backend %q", backend) //nolint:err113 // carries the name
	}
}
