package filesystem

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Exported constants.
const (
	// DefaultSSHPort is used when an sftp:// location names no port.
	DefaultSSHPort = 22
)

// Exported variables.
var (
	ErrMissingHost = errors.New("sftp location must include a host")
	ErrMissingUser = errors.New("sftp location must include a user (sftp://user@host/path)")
)

// Location is a parsed workspace root: either a local path or a directory
// on an SFTP server.
type Location struct {
	Remote bool

	// Path is the local path, or the remote path to use with the SFTP session.
	Path string

	Host string
	Port int
	User string
}

// ParseLocation parses a root given on the command line.
// Remote roots have the form sftp://user@host[:port]/path; everything else
// is a local path, returned as given.
//
// Remote path convention:
//   - sftp://user@host/data  is data in the remote home directory
//   - sftp://user@host//srv  is the absolute path /srv
//   - sftp://user@host       is the remote home directory itself
func ParseLocation(raw string) (Location, error) {
	if !strings.HasPrefix(raw, "sftp://") {
		return Location{Path: raw}, nil
	}

	u, err := url.Parse(raw) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return Location{}, fmt.Errorf("invalid sftp location: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return Location{}, ErrMissingUser
	}

	if u.Hostname() == "" {
		return Location{}, ErrMissingHost
	}

	port := DefaultSSHPort

	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return Location{}, fmt.Errorf("invalid port in sftp location: %w", err)
		}
	}

	return Location{
		Remote: true,
		Path:   remotePath(u.Path),
		Host:   u.Hostname(),
		Port:   port,
		User:   u.User.Username(),
	}, nil
}

// Address returns host:port for dialing. Empty for local locations.
func (l Location) Address() string {
	if !l.Remote {
		return ""
	}

	return net.JoinHostPort(l.Host, strconv.Itoa(l.Port))
}

// String renders the location the way it was written, without a password.
func (l Location) String() string {
	if !l.Remote {
		return l.Path
	}

	host := l.Host
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	rendered := "sftp://" + l.User + "@" + host
	if l.Port != DefaultSSHPort {
		rendered += ":" + strconv.Itoa(l.Port)
	}

	if l.Path == "." {
		return rendered
	}

	// An absolute remote path renders with a double slash.
	return rendered + "/" + l.Path
}

func remotePath(urlPath string) string {
	switch {
	case urlPath == "" || urlPath == "/":
		return "."
	case strings.HasPrefix(urlPath, "//"):
		return urlPath[1:]
	default:
		return strings.TrimPrefix(urlPath, "/")
	}
}
