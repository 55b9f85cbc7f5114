package errors

import (
	"errors"
	"io/fs"
	"syscall"
)

// Kind is the classification of a filesystem failure.
type Kind string

// Exported constants.
const (
	KindAlreadyExists     Kind = "already_exists"
	KindDirectoryNotEmpty Kind = "directory_not_empty"
	KindDiskSpace         Kind = "disk_space"
	KindInvalidData       Kind = "invalid_data"
	KindIsDirectory       Kind = "is_directory"
	KindNotDirectory      Kind = "not_directory"
	KindNotFound          Kind = "not_found"
	KindOther             Kind = "other"
	KindPermissionDenied  Kind = "permission_denied"
	KindUnsupported       Kind = "unsupported"
)

// Exported variables.
var (
	// ErrInvalidData reports content that is not valid UTF-8 text.
	ErrInvalidData = errors.New("stream did not contain valid UTF-8")
	// ErrUnsupported reports an operation the backend or platform cannot perform.
	ErrUnsupported = errors.ErrUnsupported
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "already exists"
	case KindDirectoryNotEmpty:
		return "directory not empty"
	case KindDiskSpace:
		return "no space left"
	case KindInvalidData:
		return "invalid data"
	case KindIsDirectory:
		return "is a directory"
	case KindNotDirectory:
		return "not a directory"
	case KindNotFound:
		return "not found"
	case KindPermissionDenied:
		return "permission denied"
	case KindUnsupported:
		return "unsupported"
	case KindOther:
		return "other"
	default:
		return string(k)
	}
}

// KindOf classifies err. A nil error has no kind and returns "".
//
// Classification order: an explicit *PathError kind, then the io/fs
// sentinels and syscall errnos reachable through Unwrap, then the message
// pattern matcher (for backends such as SFTP that flatten errors into text).
// Anything left is KindOther.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var pathErr *PathError
	if errors.As(err, &pathErr) && pathErr.Kind != "" {
		return pathErr.Kind
	}

	if kind, ok := kindFromSentinel(err); ok {
		return kind
	}

	if kind := defaultMatcher.Match(err.Error()); kind != "" {
		return kind
	}

	return KindOther
}

// Is reports whether err classifies as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Stateless matcher shared by KindOf
	defaultMatcher = NewPatternMatcher()

	//nolint:gochecknoglobals // Ordered sentinel table; first match wins
	sentinelKinds = []struct {
		target error
		kind   Kind
	}{
		{ErrInvalidData, KindInvalidData},
		{errors.ErrUnsupported, KindUnsupported},
		{syscall.ENOTEMPTY, KindDirectoryNotEmpty},
		{syscall.EISDIR, KindIsDirectory},
		{syscall.ENOTDIR, KindNotDirectory},
		{syscall.ENOSPC, KindDiskSpace},
		{fs.ErrNotExist, KindNotFound},
		{fs.ErrPermission, KindPermissionDenied},
		{fs.ErrExist, KindAlreadyExists},
	}
)

func kindFromSentinel(err error) (Kind, bool) {
	for _, s := range sentinelKinds {
		if errors.Is(err, s.target) {
			return s.kind, true
		}
	}

	return "", false
}
